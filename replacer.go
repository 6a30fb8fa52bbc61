package saynumber

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/projectdiscovery/fasttemplate"
)

const (
	// ParenthesisOpen marker - begin of a placeholder
	ParenthesisOpen = "{{"
	// ParenthesisClose marker - end of a placeholder
	ParenthesisClose = "}}"
)

// defaultTemplate renders a latinOnly component like "123 millionen"
const defaultTemplate = "{{value}} {{scale}}"

var varRegex = regexp.MustCompile(`\{\{([a-zA-Z0-9]+)\}\}`)

// known placeholders of a component template
var templateVars = map[string]struct{}{"value": {}, "scale": {}}

// Replace replaces placeholders in template with values on the fly.
func Replace(template string, values map[string]interface{}) string {
	valuesMap := make(map[string]interface{}, len(values))
	for k, v := range values {
		valuesMap[k] = fmt.Sprint(v)
	}
	return fasttemplate.ExecuteStringStd(template, ParenthesisOpen, ParenthesisClose, valuesMap)
}

// returns names of all variables
func getAllVars(data string) []string {
	values := []string{}
	for _, v := range varRegex.FindAllStringSubmatch(data, -1) {
		if len(v) >= 2 {
			values = append(values, v[1])
		}
	}
	return values
}

// validateTemplate compiles the template and checks it only uses known placeholders
func validateTemplate(template string) error {
	if _, err := fasttemplate.NewTemplate(template, ParenthesisOpen, ParenthesisClose); err != nil {
		return err
	}
	var unknown []string
	for _, v := range getAllVars(template) {
		if _, ok := templateVars[v]; !ok {
			unknown = append(unknown, v)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown template variables `%v`", strings.Join(unknown, ","))
	}
	return nil
}
