// Package version хранит сведения о сборке, которые подставляются через -ldflags.
package version

import "fmt"

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Info возвращает версию, коммит и дату сборки.
func Info() (v, c, d string) { return version, commit, date }

// Version — короткая версия для health-ответов и логов.
func Version() string { return version }

func String() string {
	return fmt.Sprintf("version=%s commit=%s date=%s", version, commit, date)
}

// UserAgent формирует User-Agent для исходящих HTTP-запросов компонента.
func UserAgent(component string) string {
	return fmt.Sprintf("%s/%s (+%s)", component, version, commit)
}
