// Package tools assembles the fixed toolbox the model may call. The tool set
// is closed: the two constructors below are the whole surface.
package tools

import (
	"fmt"

	"github.com/tdnguyen/aureus/src/advisor/tools/tool_advice"
	"github.com/tdnguyen/aureus/src/advisor/tools/tool_getprice"
	"github.com/tdnguyen/aureus/src/agent"
	"github.com/tdnguyen/aureus/src/aisdk"
)

// Tool name constants - re-exported from individual packages
const (
	GetGoldPriceName   = tool_getprice.Name
	GenerateAdviceName = tool_advice.Name
)

// GetGoldPriceTool builds the price lookup tool.
func GetGoldPriceTool(lookup tool_getprice.PriceLookup) (agent.Tool, error) {
	return tool_getprice.Tool(lookup)
}

// GenerateAdviceTool builds the investment advice tool.
func GenerateAdviceTool(model aisdk.ModelClient) (agent.Tool, error) {
	return tool_advice.Tool(model)
}

// BuildToolbox registers the full fixed tool set.
func BuildToolbox(lookup tool_getprice.PriceLookup, model aisdk.ModelClient) (*agent.DefaultToolbox, error) {
	toolbox := agent.NewToolbox[agent.Tool]()

	priceTool, err := GetGoldPriceTool(lookup)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", GetGoldPriceName, err)
	}
	if err := toolbox.RegisterTool(priceTool); err != nil {
		return nil, err
	}

	adviceTool, err := GenerateAdviceTool(model)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", GenerateAdviceName, err)
	}
	if err := toolbox.RegisterTool(adviceTool); err != nil {
		return nil, err
	}

	return toolbox, nil
}
