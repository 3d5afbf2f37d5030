package engine

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// RemediationTemplate is a fix plan for one Lynis test, keyed by test ID
type RemediationTemplate struct {
	ID                string   `yaml:"id"` // e.g. SSH-7408
	Name              string   `yaml:"name"`
	Issue             string   `yaml:"issue"`
	Risk              string   `yaml:"risk"`
	Standard          string   `yaml:"standard"`
	Description       string   `yaml:"description"`
	FixCommand        string   `yaml:"fix_command"`
	ValidationCommand string   `yaml:"validation_command"`
	RollbackCommand   string   `yaml:"rollback_command"`
	Variables         []string `yaml:"variables"`
}

// RemediationEngine holds the loaded remediation templates
type RemediationEngine struct {
	Templates map[string]RemediationTemplate
}

// NewRemediationEngine creates a new remediation engine
func NewRemediationEngine() *RemediationEngine {
	return &RemediationEngine{
		Templates: make(map[string]RemediationTemplate),
	}
}

// LoadTemplates reads YAML templates from a directory
func (e *RemediationEngine) LoadTemplates(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read templates dir: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() && (filepath.Ext(entry.Name()) == ".yaml" || filepath.Ext(entry.Name()) == ".yml") {
			path := filepath.Join(dir, entry.Name())
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			var t RemediationTemplate
			if err := yaml.Unmarshal(data, &t); err != nil {
				return fmt.Errorf("failed to parse %s: %w", entry.Name(), err)
			}
			if t.ID == "" {
				return fmt.Errorf("template %s has no id", entry.Name())
			}
			e.Templates[t.ID] = t
		}
	}
	return nil
}

// ListTemplates returns the available template IDs and names, sorted by ID
func (e *RemediationEngine) ListTemplates() []string {
	var list []string
	for _, t := range e.Templates {
		list = append(list, fmt.Sprintf("%s: %s", t.ID, t.Name))
	}
	sort.Strings(list)
	return list
}

// Lookup returns the template for a test ID
func (e *RemediationEngine) Lookup(id string) (RemediationTemplate, bool) {
	t, ok := e.Templates[id]
	return t, ok
}

// Plan is a rendered remediation template
type Plan struct {
	TestID   string
	Issue    string
	Risk     string
	Standard string
	Fix      string
	Validate string
	Rollback string
}

// GeneratePlan renders the template for id with vars. Every variable the
// template declares must be present in vars.
func (e *RemediationEngine) GeneratePlan(id string, vars map[string]string) (Plan, error) {
	tmpl, ok := e.Templates[id]
	if !ok {
		return Plan{}, fmt.Errorf("template not found: %s", id)
	}

	for _, requiredVar := range tmpl.Variables {
		if _, exists := vars[requiredVar]; !exists {
			return Plan{}, fmt.Errorf("missing required variable: %s", requiredVar)
		}
	}

	plan := Plan{TestID: tmpl.ID, Issue: tmpl.Issue, Risk: tmpl.Risk, Standard: tmpl.Standard}
	var err error
	if plan.Fix, err = renderString("fix", tmpl.FixCommand, vars); err != nil {
		return Plan{}, err
	}
	if plan.Validate, err = renderString("validate", tmpl.ValidationCommand, vars); err != nil {
		return Plan{}, err
	}
	if plan.Rollback, err = renderString("rollback", tmpl.RollbackCommand, vars); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

func (p Plan) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[FIX PLAN] %s\n", p.TestID))
	sb.WriteString(fmt.Sprintf("Issue: %s\n", p.Issue))
	sb.WriteString(fmt.Sprintf("Risk: %s\n", p.Risk))
	if p.Standard != "" {
		sb.WriteString(fmt.Sprintf("Standard: %s\n", p.Standard))
	}
	sb.WriteString("\nSuggested Fix:\n" + p.Fix + "\n")
	if p.Validate != "" {
		sb.WriteString("\nValidation:\n" + p.Validate + "\n")
	}
	if p.Rollback != "" {
		sb.WriteString("\nRollback:\n" + p.Rollback + "\n")
	}
	return sb.String()
}

func renderString(name, tmplStr string, vars map[string]string) (string, error) {
	t, err := template.New(name).Option("missingkey=error").Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}
