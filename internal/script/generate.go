// Package script renders the thin wrapper scripts around the wrapped
// scanner's own configure/build machinery.  All shell interpolation lives
// in the two templates below; callers hand in a typed parameter struct
// computed from a resolved environment.
package script

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"scanenv/internal/types"
)

// InstallPrefix is where `make install` places the packaged scanner build.
const InstallPrefix = "/opt/scanenv/nmap"

// BuildControlFile is the artifact the configure step leaves behind; its
// presence is the precondition for the build wrapper.
const BuildControlFile = "Makefile"

// Params is the full set of values the templates may interpolate.
type Params struct {
	Profile       string
	Exports       []ExportLine
	OpenSSLPrefix string
	SSHPrefix     string
	PcrePrefix    string
	LuaPrefix     string
	ZlibPrefix    string
	PcapPrefix    string
	ExtraFlags    []string
}

type ExportLine struct {
	Name  string
	Value string
}

const configureTemplate = `#!/bin/sh
# configure wrapper for profile {{.Profile}}; generated, do not edit.
set -eu
{{range .Exports}}export {{.Name}}="{{.Value}}"
{{end}}
exec ./configure \
    --prefix={{.InstallPrefix}} \
    --with-openssl={{.OpenSSLPrefix}} \
    --with-libssh2={{.SSHPrefix}} \
    --with-libpcre={{.PcrePrefix}} \
    --with-liblua={{.LuaPrefix}} \
    --with-libz={{.ZlibPrefix}} \
    --with-libpcap={{.PcapPrefix}} \
    --enable-nse \
    CFLAGS="-g -O2 ${CFLAGS:-}"{{range .ExtraFlags}} \
    {{.}}{{end}}
`

const buildTemplate = `#!/bin/sh
# build wrapper for profile {{.Profile}}; generated, do not edit.
set -eu
if [ ! -f {{.ControlFile}} ]; then
    echo "error: no {{.ControlFile}} found; run the configure wrapper first" >&2
    exit 1
fi
{{range .Exports}}export {{.Name}}="{{.Value}}"
{{end}}
exec make -j"{{.Jobs}}"
`

type configureParams struct {
	Params
	InstallPrefix string
}

type buildParams struct {
	Profile     string
	Exports     []ExportLine
	ControlFile string
	Jobs        int
}

var (
	configureTmpl = template.Must(template.New("configure").Parse(configureTemplate))
	buildTmpl     = template.Must(template.New("build").Parse(buildTemplate))
)

// Generate renders the wrapper script text for kind.  Jobs sizes the
// downstream parallel build and is ignored for the configure wrapper.
func Generate(kind types.ScriptKind, resolved types.ResolvedEnvironment, jobs int) (string, error) {
	exports := exportLines(resolved)
	switch kind {
	case types.ScriptConfigure:
		params, err := newConfigureParams(resolved)
		if err != nil {
			return "", err
		}
		params.Exports = exports
		return render(configureTmpl, params)
	case types.ScriptBuild:
		if jobs < 1 {
			jobs = 1
		}
		return render(buildTmpl, buildParams{
			Profile:     string(resolved.Profile),
			Exports:     exports,
			ControlFile: BuildControlFile,
			Jobs:        jobs,
		})
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown script kind %q", kind))
	}
}

func newConfigureParams(resolved types.ResolvedEnvironment) (configureParams, error) {
	prefixFor := func(name string) (string, error) {
		entry, ok := resolved.Deps[name]
		if !ok {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("profile %q does not carry dependency %q needed by the configure wrapper", resolved.Profile, name))
		}
		return entry.Prefix, nil
	}

	params := configureParams{InstallPrefix: InstallPrefix}
	params.Profile = string(resolved.Profile)
	params.ExtraFlags = append([]string(nil), resolved.ExtraConfigureFlags...)

	var err error
	if params.OpenSSLPrefix, err = prefixFor("openssl"); err != nil {
		return configureParams{}, err
	}
	if params.SSHPrefix, err = prefixFor("libssh2"); err != nil {
		return configureParams{}, err
	}
	if params.PcrePrefix, err = prefixFor("pcre2"); err != nil {
		return configureParams{}, err
	}
	if params.LuaPrefix, err = prefixFor("lua"); err != nil {
		return configureParams{}, err
	}
	if params.ZlibPrefix, err = prefixFor("zlib"); err != nil {
		return configureParams{}, err
	}
	if params.PcapPrefix, err = prefixFor("libpcap"); err != nil {
		return configureParams{}, err
	}
	return params, nil
}

func exportLines(resolved types.ResolvedEnvironment) []ExportLine {
	var lines []ExportLine
	for _, name := range resolved.VarOrder {
		lines = append(lines, ExportLine{Name: name, Value: resolved.Vars[name]})
	}
	return lines
}

func render(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to render script template").
			WithCause(err)
	}
	return sb.String(), nil
}
