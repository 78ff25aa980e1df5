package main

import "strings"

// optionalValueFlags are the switches whose directory argument may be
// omitted. Keys are lower case; both spellings map to the long name.
var optionalValueFlags = map[string]string{
	"-d":      "debug",
	"--debug": "debug",
	"-j":      "json",
	"--json":  "json",
}

// normalizeArgs rewrites the optional-value switches to the "--name=value"
// form pflag understands. Names match case-insensitively and the value is
// taken from the next argument unless that looks like another switch, so
// "-D C:\Logs", "-d", "--DEBUG=C:\Logs" and "--debug" all work.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")

		long, ok := optionalValueFlags[strings.ToLower(name)]
		if !ok {
			out = append(out, arg)
			continue
		}

		if !hasValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			value = args[i+1]
			i++
		}
		out = append(out, "--"+long+"="+value)
	}
	return out
}
