package template

import (
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		vars Variables
		want string
	}{
		{
			name: "single placeholder",
			tmpl: "Hello {{name}}",
			vars: Variables{"name": "Ann"},
			want: "Hello Ann",
		},
		{
			name: "missing key left verbatim",
			tmpl: "Hello {{name}}",
			vars: Variables{},
			want: "Hello {{name}}",
		},
		{
			name: "every occurrence replaced",
			tmpl: "{{a}}-{{a}}-{{b}}",
			vars: Variables{"a": "1", "b": "2"},
			want: "1-1-2",
		},
		{
			name: "case sensitive",
			tmpl: "{{Name}} {{name}}",
			vars: Variables{"name": "Ann"},
			want: "{{Name}} Ann",
		},
		{
			name: "spaces inside braces do not match",
			tmpl: "{{ name }}",
			vars: Variables{"name": "Ann"},
			want: "{{ name }}",
		},
		{
			name: "empty value",
			tmpl: "Due {{dueDate}}.",
			vars: Variables{"dueDate": ""},
			want: "Due .",
		},
		{
			name: "unterminated placeholder kept",
			tmpl: "Rent {{rentAmount}} due {{",
			vars: Variables{"rentAmount": "1200"},
			want: "Rent 1200 due {{",
		},
		{
			name: "values are not expanded again",
			tmpl: "{{a}}",
			vars: Variables{"a": "{{b}}", "b": "x"},
			want: "{{b}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.tmpl, tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRejectsNonString(t *testing.T) {
	for _, in := range []any{42, nil, 3.5, []string{"x"}} {
		_, err := Resolve(in, Variables{})
		assert.ErrorIs(t, err, ErrTemplateNotString)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	vars := Variables{"tenantName": "Ann", "rentAmount": "1200", "dueDate": "03/01/2025"}
	tmpl := "Hi {{tenantName}}, {{rentAmount}} is due {{dueDate}}."

	first, err := Resolve(tmpl, vars)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := Resolve(tmpl, vars)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestProcess(t *testing.T) {
	t.Run("without sender", func(t *testing.T) {
		assert.Equal(t, "Hello Ann", Process("Hello {{name}}", Variables{"name": "Ann"}, ""))
	})

	t.Run("with sender appends disclaimer", func(t *testing.T) {
		got := Process("Body", Variables{}, "a@b.com")
		assert.True(t, strings.HasPrefix(got, "Body"))
		assert.Equal(t, "Body"+Disclaimer("a@b.com"), got)
		assert.Contains(t, got, "a@b.com")
		assert.Contains(t, got, "do not reply")
	})

	t.Run("non string template logs and returns empty", func(t *testing.T) {
		hook := test.NewGlobal()
		defer hook.Reset()

		assert.Equal(t, "", Process(42, Variables{}, "a@b.com"))
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, log.ErrorLevel, hook.LastEntry().Level)
		assert.Equal(t, "int", hook.LastEntry().Data["template_type"])
	})
}

func TestDisclaimerEscapesSender(t *testing.T) {
	got := Disclaimer(`x"<y>@b.com`)
	assert.NotContains(t, got, `<y>`)
	assert.Contains(t, got, "&lt;y&gt;")
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "Rent is due", want: "Rent is due"},
		{name: "inline tags", in: "<p>Hi <b>Ann</b>,</p>", want: "Hi Ann,"},
		{name: "entities", in: "Tom &amp; Jerry &lt;3", want: "Tom & Jerry <3"},
		{name: "line breaks", in: "Line one<br>Line two", want: "Line one\nLine two"},
		{name: "paragraphs", in: "<p>One</p><p>Two</p>", want: "One\nTwo"},
		{name: "style dropped", in: "<style>p{color:red}</style><p>Text</p>", want: "Text"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.in))
		})
	}
}
