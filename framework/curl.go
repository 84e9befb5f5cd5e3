package framework

import (
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/alessio/shellescape"
)

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// curlCommand renders a request as a curl command line that can be pasted into a shell to
// reproduce it. The value of the secret header, if any, is masked.
func curlCommand(req *http.Request, encodedForm string, secretHeader string) string {
	var b commandBuilder
	b.add("curl", "-i", "-X", req.Method)

	names := make([]string, 0, len(req.Header))
	for name := range req.Header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, value := range req.Header[name] {
			if secretHeader != "" && strings.EqualFold(name, secretHeader) {
				value = "***"
			}
			b.add("-H", name+": "+value)
		}
	}

	if encodedForm != "" {
		form, err := url.ParseQuery(encodedForm)
		if err == nil {
			keys := make([]string, 0, len(form))
			for k := range form {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				for _, v := range form[k] {
					b.add("--data-urlencode", k+"="+v)
				}
			}
		}
	}

	b.add(req.URL.String())
	return b.String()
}
