package template

import (
	"errors"
	"fmt"
	"html"
	"strings"

	log "github.com/sirupsen/logrus"
)

var ErrTemplateNotString = errors.New("template is not a string")

// Variables maps placeholder names to their display values.
type Variables map[string]string

// Resolve replaces every {{key}} occurrence for the keys present in vars.
// Placeholders without a matching key are kept as they are. Replacement is a
// single pass, so values are never themselves expanded.
func Resolve(tmpl any, vars Variables) (string, error) {
	s, ok := tmpl.(string)
	if !ok {
		return "", fmt.Errorf("%w: got %T", ErrTemplateNotString, tmpl)
	}
	if len(vars) == 0 || !strings.Contains(s, "{{") {
		return s, nil
	}

	pairs := make([]string, 0, len(vars)*2)
	for key, value := range vars {
		pairs = append(pairs, "{{"+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(s), nil
}

// Process resolves tmpl and, when senderEmail is set, appends the
// auto-generated disclaimer. It never fails: an invalid template is logged
// and yields an empty string.
func Process(tmpl any, vars Variables, senderEmail string) string {
	out, err := Resolve(tmpl, vars)
	if err != nil {
		log.WithError(err).WithField("template_type", fmt.Sprintf("%T", tmpl)).Error("Invalid template")
		return ""
	}
	if senderEmail != "" {
		out += Disclaimer(senderEmail)
	}
	return out
}

func Disclaimer(senderEmail string) string {
	sender := html.EscapeString(senderEmail)
	return `<br><br><hr>` +
		`<p style="font-size:12px;color:#6b7280;">` +
		`This message was sent on behalf of ` + sender + `. ` +
		`It was generated automatically, please do not reply to this email. ` +
		`For questions contact <a href="mailto:` + sender + `">` + sender + `</a> directly.` +
		`</p>`
}
