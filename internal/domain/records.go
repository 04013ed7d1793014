package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

// millis is an epoch-millisecond timestamp decoded leniently from a JSON
// number, numeric string or null. Anything else decodes as absent.
type millis string

func (ms *millis) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)

	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*ms = millis(strconv.FormatInt(v, 10))
		return nil
	}

	// Floats outside the int64 range have no defined conversion.
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f >= math.MinInt64 && f < math.MaxInt64 {
		*ms = millis(strconv.FormatInt(int64(f), 10))
		return nil
	}

	*ms = ""

	return nil
}

var errNotObject = errors.New("record is not a JSON object")

// decodeRecord unmarshals a record file into v. Bodies that are not a JSON
// object, such as null or an array, are rejected.
func decodeRecord(data []byte, v any) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		return errNotObject
	}

	return json.Unmarshal(data, v)
}

// text decodes any JSON scalar as a string. Writers disagree on whether
// parameter values are strings, so numbers and booleans are kept verbatim.
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = text(s)
		return nil
	}

	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		raw = ""
	}

	*t = text(raw)

	return nil
}

type rawPair struct {
	Name  text `json:"name"`
	Value text `json:"value"`
}

type rawAttachment struct {
	Name   text `json:"name"`
	Source text `json:"source"`
	Type   text `json:"type"`
}

type rawTime struct {
	Start millis `json:"start"`
	Stop  millis `json:"stop"`
}

// resultRecord is one *-result.json file.
type resultRecord struct {
	UUID        string       `json:"uuid"`
	Name        text         `json:"name"`
	FullName    text         `json:"fullName"`
	Description text         `json:"description"`
	Status      string       `json:"status"`
	Start       millis       `json:"start"`
	Stop        millis       `json:"stop"`
	Labels      []rawPair    `json:"labels"`
	Parameters  []rawPair    `json:"parameters"`
	Steps       []resultStep `json:"steps"`
}

type resultStep struct {
	Name        text            `json:"name"`
	Status      string          `json:"status"`
	Start       millis          `json:"start"`
	Stop        millis          `json:"stop"`
	Attachments []rawAttachment `json:"attachments"`
	Steps       []resultStep    `json:"steps"`
}

// containerRecord is one *-container.json file. Only the references are kept.
type containerRecord struct {
	UUID     string       `json:"uuid"`
	Name     text         `json:"name"`
	Children []string     `json:"children"`
	Befores  []resultStep `json:"befores"`
	Afters   []resultStep `json:"afters"`
}

// suiteNode is a node of data/suites.json. Nodes with a children key are
// suites, nodes without one reference test cases by uid.
type suiteNode struct {
	UID      string      `json:"uid"`
	Name     text        `json:"name"`
	Children []suiteNode `json:"children"`
}

func (n suiteNode) isSuite() bool {
	return n.Children != nil
}

// reportTestCase is one data/test-cases/<uid>.json file.
type reportTestCase struct {
	UID         string    `json:"uid"`
	Name        text      `json:"name"`
	FullName    text      `json:"fullName"`
	Title       text      `json:"title"`
	Description text      `json:"description"`
	Status      string    `json:"status"`
	Time        rawTime   `json:"time"`
	Labels      []rawPair `json:"labels"`
	Parameters  []rawPair `json:"parameters"`
	TestStage   struct {
		Steps []reportStep `json:"steps"`
	} `json:"testStage"`
	Extra struct {
		Severity string `json:"severity"`
	} `json:"extra"`
}

type reportStep struct {
	Name        text            `json:"name"`
	Title       text            `json:"title"`
	Status      string          `json:"status"`
	Time        rawTime         `json:"time"`
	Attachments []rawAttachment `json:"attachments"`
	Steps       []reportStep    `json:"steps"`
}

func mapLabels(raw []rawPair) []m.Label {
	labels := make([]m.Label, 0, len(raw))
	for _, p := range raw {
		labels = append(labels, m.Label{Name: string(p.Name), Value: string(p.Value)})
	}

	return labels
}

func mapParameters(raw []rawPair) []m.Parameter {
	params := make([]m.Parameter, 0, len(raw))
	for _, p := range raw {
		params = append(params, m.Parameter{Name: string(p.Name), Value: string(p.Value)})
	}

	return params
}

func mapAttachments(raw []rawAttachment) []m.Attachment {
	attachments := make([]m.Attachment, 0, len(raw))
	for _, a := range raw {
		attachments = append(attachments, m.Attachment{
			Name:   string(a.Name),
			Source: string(a.Source),
			Type:   string(a.Type),
		})
	}

	return attachments
}

// labelValue returns the first non-empty value of a label called name.
func labelValue(labels []m.Label, name string) string {
	for _, label := range labels {
		if label.Name == name && label.Value != "" {
			return label.Value
		}
	}

	return ""
}

func mapResultSteps(raw []resultStep) []m.Step {
	steps := make([]m.Step, 0, len(raw))
	for _, s := range raw {
		steps = append(steps, m.Step{
			Name:        string(s.Name),
			Title:       string(s.Name),
			Status:      m.NormalizeStatus(s.Status),
			Start:       string(s.Start),
			Stop:        string(s.Stop),
			Attachments: mapAttachments(s.Attachments),
			Steps:       mapResultSteps(s.Steps),
		})
	}

	return steps
}

func mapReportSteps(raw []reportStep) []m.Step {
	steps := make([]m.Step, 0, len(raw))
	for _, s := range raw {
		title := string(s.Title)
		if title == "" {
			title = string(s.Name)
		}

		steps = append(steps, m.Step{
			Name:        string(s.Name),
			Title:       title,
			Status:      m.NormalizeStatus(s.Status),
			Start:       string(s.Time.Start),
			Stop:        string(s.Time.Stop),
			Attachments: mapAttachments(s.Attachments),
			Steps:       mapReportSteps(s.Steps),
		})
	}

	return steps
}
