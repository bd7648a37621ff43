package browser

import (
	"github.com/entrhq/surf/pkg/tools"
)

// AllTools returns every browser tool bound to the manager, in the order
// they are advertised to clients.
func AllTools(manager *Manager) []tools.Tool {
	return []tools.Tool{
		NewNavigateTool(manager),
		NewGoBackTool(manager),
		NewGoForwardTool(manager),
		NewReloadTool(manager),
		NewClickTool(manager),
		NewTypeTextTool(manager),
		NewSelectOptionTool(manager),
		NewCheckCheckboxTool(manager),
		NewUncheckCheckboxTool(manager),
		NewHoverTool(manager),
		NewScrollToTool(manager),
		NewGetTextTool(manager),
		NewGetAttributeTool(manager),
		NewGetURLTool(manager),
		NewGetTitleTool(manager),
		NewGetLinksTool(manager),
		NewWaitForSelectorTool(manager),
		NewWaitForLoadStateTool(manager),
		NewEvaluateTool(manager),
		NewScreenshotTool(manager),
		NewFillFormTool(manager),
		NewNewTabTool(manager),
		NewCloseTabTool(manager),
		NewListTabsTool(manager),
		NewSelectTabTool(manager),
	}
}
