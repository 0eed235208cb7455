package converter

import (
	"fmt"

	"github.com/erraggy/smithytools/internal/issues"
	"github.com/erraggy/smithytools/internal/naming"
	"github.com/erraggy/smithytools/smithy"
)

// resolveName returns the component name assigned to a shape ID, computing
// and memoizing it on first use. Resolution always succeeds: collisions with
// names already held by different shape IDs are resolved by appending the
// namespace and then a numeric suffix, and each collision is reported as an
// informational issue so output naming changes stay visible.
func (ctx *conversionContext) resolveName(id smithy.ShapeID) string {
	id = id.WithoutMember()
	if name, ok := ctx.names[id]; ok {
		return name
	}

	candidate := ctx.candidateName(id)
	if owner, taken := ctx.byName[candidate]; taken && owner != id {
		resolved := ctx.disambiguate(id, candidate)
		ctx.addIssue(issues.Issue{
			Kind:     issues.KindNameCollision,
			ShapeID:  id.String(),
			Message:  fmt.Sprintf("component name %q already assigned to %s", candidate, owner),
			Severity: SeverityInfo,
			Context:  fmt.Sprintf("renamed to %q", resolved),
		})
		candidate = resolved
	}

	ctx.names[id] = candidate
	ctx.byName[candidate] = id
	return candidate
}

func (ctx *conversionContext) candidateName(id smithy.ShapeID) string {
	var name string
	switch ctx.cfg.namingStrategy {
	case NamingFullyQualified:
		name = naming.ToPascalCase(id.Namespace) + naming.ToPascalCase(id.Name)
	default:
		name = naming.ToPascalCase(id.Name)
	}
	return naming.SanitizeComponentName(name)
}

func (ctx *conversionContext) disambiguate(id smithy.ShapeID, candidate string) string {
	withNamespace := candidate + naming.ToPascalCase(id.Namespace)
	if owner, taken := ctx.byName[withNamespace]; !taken || owner == id {
		return withNamespace
	}
	for i := 2; ; i++ {
		numbered := fmt.Sprintf("%s%d", withNamespace, i)
		if owner, taken := ctx.byName[numbered]; !taken || owner == id {
			return numbered
		}
	}
}

// schemaRef returns the $ref pointer for a shape's component entry,
// resolving (and memoizing) its name as a side effect.
func (ctx *conversionContext) schemaRef(id smithy.ShapeID) string {
	return "#/components/schemas/" + ctx.resolveName(id)
}
