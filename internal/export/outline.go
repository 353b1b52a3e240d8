package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dusk-indust/outline/internal/extract"
)

// WriteOutline renders one file's definition list in outline form: one line
// per record, "<start>--<end> | <label>". Line bounds are shifted to 1-based
// here, at the output boundary; everything upstream is 0-based.
func WriteOutline(sb *strings.Builder, result *extract.Result) {
	for _, def := range result.Definitions {
		fmt.Fprintf(sb, "%d--%d | %s\n", def.StartLine+1, def.EndLine+1, def.Label)
	}
}

// FormatFile renders a single file result with a path header.
func FormatFile(result *extract.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", result.Path)
	WriteOutline(&sb, result)
	return sb.String()
}

// FormatBatch renders a batch outcome map in deterministic path order.
// Successful files print their outline; files with no definitions print a
// note; failures print their outcome tag so a batch always reports partial
// success rather than failing the whole listing.
func FormatBatch(outcomes map[string]extract.Outcome) string {
	paths := make([]string, 0, len(outcomes))
	for path := range outcomes {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var sb strings.Builder
	for _, path := range paths {
		out := outcomes[path]
		switch {
		case out.Kind == extract.OutcomeSkipped:
			continue
		case out.Kind == extract.OutcomeOK && out.Result != nil:
			if len(out.Result.Definitions) == 0 {
				continue
			}
			fmt.Fprintf(&sb, "# %s\n", path)
			WriteOutline(&sb, out.Result)
		default:
			fmt.Fprintf(&sb, "# %s\n(%s) %s\n", path, out.Kind, out.Err)
		}
	}
	if sb.Len() == 0 {
		return "No definitions found.\n"
	}
	return sb.String()
}
