package style

import (
	"fmt"
	"strings"

	"github.com/Nusiq/custom-project-filter-src/pkg/copier"
)

// RenderSummary builds the end-of-run report for a copy result.
func RenderSummary(res *copier.Result) string {
	var b strings.Builder
	b.WriteString(Title("Copy summary") + "\n")
	b.WriteString(fmt.Sprintf("  %s %d\n", Success("copied:"), res.Copied))
	b.WriteString(fmt.Sprintf("  %s %d\n", Warning("unmapped:"), res.SkippedUnmapped))
	b.WriteString(fmt.Sprintf("  %s %d\n", Warning("already existed:"), res.SkippedExists))
	b.WriteString(fmt.Sprintf("  %s %d", Error("failed:"), res.Failed))
	return b.String()
}
