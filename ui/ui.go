// Package ui is the one-page web front-end: a form that takes a flight
// number and shows where that aircraft is. The legacy '\_XXX_' highlight
// markers in the status line get turned into styled spans here; every
// other consumer gets the raw line.
package ui

import (
	"fmt"
	"html/template"
	"net/http"
	"regexp"
	"strings"

	"github.com/skypies/util/widget"

	"github.com/skypies/wimp/locator"
)

type Server struct {
	Loc *locator.Locator
}

func NewServer(loc *locator.Locator) *Server { return &Server{Loc: loc} }

func (s *Server) RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/", s.statusHandler)
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html><head><title>where is my plane</title><style>
 body { font-family: monospace; margin: 2em; }
 .apt { font-weight: bold; background: #ffe97f; padding: 0 0.2em; }
 .debug { color: #888; white-space: pre-wrap; }
</style></head><body>
<h3>where is my plane</h3>
<form method="GET">
 <input type="text" name="flight" value="{{.Flight}}" placeholder="U2123">
 <input type="submit" value="find">
</form>
{{if .Line}}<p>{{.Line}}</p>{{else if .Searched}}<p>could not determine - no usable result</p>{{end}}
{{if .Reg}}<p>registration: {{.Reg}}</p>{{end}}
{{if .Debug}}<div class="debug">{{.Debug}}</div>{{end}}
</body></html>
`))

type pageParams struct {
	Flight   string
	Searched bool
	Line     template.HTML
	Reg      string
	Debug    string
}

func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	params := pageParams{Flight: r.FormValue("flight")}

	if params.Flight != "" {
		params.Searched = true
		answer, err := s.Loc.Locate(params.Flight)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		params.Line = highlightLine(answer.Line())
		params.Reg = answer.Registration
		if widget.FormValueCheckbox(r, "debug") {
			params.Debug = answer.Debug
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, params); err != nil {
		http.Error(w, fmt.Sprintf("template: %v", err), http.StatusInternalServerError)
	}
}

// The display convention marks arrival airports as '\_XXX_' and departure
// airports as '_XXX_/'.
var (
	arrMarkRE = regexp.MustCompile(`\\_([A-Z]{3})_`)
	depMarkRE = regexp.MustCompile(`_([A-Z]{3})_/`)
)

func highlightLine(line string) template.HTML {
	if line == "" {
		return ""
	}
	escaped := template.HTMLEscapeString(line)
	escaped = arrMarkRE.ReplaceAllString(escaped, `<span class="apt">$1</span>`)
	escaped = depMarkRE.ReplaceAllString(escaped, `<span class="apt">$1</span>/`)
	escaped = strings.ReplaceAll(escaped, "\\", "")
	return template.HTML(escaped)
}
