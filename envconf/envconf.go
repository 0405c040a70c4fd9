// Package envconf exposes the handler's configuration values. Values are
// looked up in the process environment on every call.
package envconf

import (
	"github.com/spf13/viper"
)

const (
	EnvEnvironment = "ENVIRONMENT"
	EnvProject     = "PROJECT"

	Unknown = "unknown"
)

const (
	keyEnvironment = "environment"
	keyProject     = "project"
)

// Source supplies the configuration values echoed by the handler.
type Source interface {
	Environment() string
	Project() string
}

// Reader resolves values from the process environment. It holds no state
// beyond the key bindings, so it is safe for concurrent use.
type Reader struct {
	v *viper.Viper
}

func NewReader() *Reader {
	v := viper.New()
	// a variable set to "" is still set
	v.AllowEmptyEnv(true)
	loadOrDefault(v, keyEnvironment, EnvEnvironment, Unknown)
	loadOrDefault(v, keyProject, EnvProject, Unknown)
	return &Reader{v: v}
}

func loadOrDefault(v *viper.Viper, key string, envVar string, defaultVal any) {
	v.SetDefault(key, defaultVal)
	_ = v.BindEnv(key, envVar)
}

func (r *Reader) Environment() string {
	return r.v.GetString(keyEnvironment)
}

func (r *Reader) Project() string {
	return r.v.GetString(keyProject)
}

// Static is a fixed Source.
type Static struct {
	EnvironmentValue string
	ProjectValue     string
}

func (s Static) Environment() string { return s.EnvironmentValue }

func (s Static) Project() string { return s.ProjectValue }
