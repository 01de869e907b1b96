package command

import (
	"sort"
	"strings"
	"time"
)

// Registry maps lowercase command tokens to responses
// Immutable after construction
type Registry struct {
	entries map[string]Response
	names   []string
}

// NewRegistry builds the command table, date output is fixed at now
func NewRegistry(now time.Time) *Registry {
	entries := map[string]Response{
		"help":       Literal(helpText),
		"about":      Literal(aboutText),
		"skills":     Literal(skillsText),
		"projects":   Literal(projectsText),
		"experience": Literal(experienceText),
		"education":  Literal(educationText),
		"contact":    Literal(contactText),
		"social":     Literal(socialText),
		"whoami":     Literal(whoamiText),
		"date":       Literal(now.Format(dateLayout)),
		"ls":         Literal(lsText),
		"pwd":        Literal(pwdText),
		"sudo":       Literal(sudoText),
		"hack":       Sequence(hackLines...),
		"matrix":     Sequence(matrixLines...),
		"clear":      Control(ClearOutput),
		"cls":        Control(ClearOutput),
		"exit":       Control(CloseSession),
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Registry{entries: entries, names: names}
}

// Token returns the lowercase first word of line, empty for blank input
func Token(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// Lookup resolves the first word of line, ignoring case and arguments
func (r *Registry) Lookup(line string) (Response, bool) {
	token := Token(line)
	if token == "" {
		return Response{}, false
	}
	resp, ok := r.entries[token]
	if ok && resp.Lines != nil {
		resp.Lines = append([]string(nil), resp.Lines...)
	}
	return resp, ok
}

// Names returns the sorted command names
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered commands
func (r *Registry) Len() int {
	return len(r.entries)
}
