package inputs

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Hook documents come in two shapes in the wild:
//
// nested (matcher groups):
//
//	hooks:
//	  PreToolUse:
//	    - matcher: "Bash"
//	      hooks:
//	        - type: command
//	          command: "./guard.sh"
//
// flat (commands directly under the event):
//
//	hooks:
//	  PreToolUse:
//	    - "./guard.sh"
//	    - command: "./audit.sh"
//
// Each event list is resolved once at parse time into a tagged eventConfig;
// extraction never re-sniffs shapes. Documents are decoded with yaml.v3, which
// accepts both JSON and YAML, so a single path handles either encoding.

type hookForm int

const (
	formFlat hookForm = iota
	formNested
)

type matcherGroup struct {
	Matcher string       `yaml:"matcher"`
	Hooks   []commandRef `yaml:"hooks"`
}

type commandRef struct {
	Type    string `yaml:"type"`
	Command string `yaml:"command"`
}

type eventConfig struct {
	form   hookForm
	nested []matcherGroup
	flat   []string
}

type hookDocument struct {
	Hooks map[string]yaml.Node `yaml:"hooks"`
}

// ParseHookDocument extracts normalized hook entries from a raw settings
// document. Malformed documents, unrecognized entries, and empty commands are
// dropped silently; the result is never an error, only fewer entries.
func ParseHookDocument(raw []byte) []HookEntry {
	var doc hookDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil
	}
	if len(doc.Hooks) == 0 {
		return nil
	}

	// Deterministic event order: yaml.v3 map decoding loses document order,
	// so re-decode the hooks mapping keys in document order.
	events := hookEventOrder(raw)

	var entries []HookEntry
	for _, event := range events {
		node, ok := doc.Hooks[event]
		if !ok {
			continue
		}
		ec, ok := resolveEventConfig(&node)
		if !ok {
			continue
		}
		for _, cmd := range ec.commands() {
			cmd = strings.TrimSpace(cmd)
			if cmd == "" {
				continue
			}
			entries = append(entries, HookEntry{Event: event, Command: cmd})
		}
	}
	return entries
}

// resolveEventConfig classifies one event's list as nested or flat. A list
// whose first mapping element carries a "hooks" key is nested; everything
// else is treated as flat. Returns false for values that are not lists.
func resolveEventConfig(node *yaml.Node) (eventConfig, bool) {
	if node == nil || node.Kind != yaml.SequenceNode {
		return eventConfig{}, false
	}

	if seqLooksNested(node) {
		var groups []matcherGroup
		if err := node.Decode(&groups); err != nil {
			return eventConfig{}, false
		}
		return eventConfig{form: formNested, nested: groups}, true
	}

	var flat []string
	for _, item := range node.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			flat = append(flat, item.Value)
		case yaml.MappingNode:
			var ref commandRef
			if err := item.Decode(&ref); err != nil {
				continue
			}
			flat = append(flat, ref.Command)
		}
	}
	return eventConfig{form: formFlat, flat: flat}, true
}

func seqLooksNested(node *yaml.Node) bool {
	for _, item := range node.Content {
		if item.Kind != yaml.MappingNode {
			return false
		}
		for i := 0; i+1 < len(item.Content); i += 2 {
			if item.Content[i].Value == "hooks" {
				return true
			}
		}
	}
	return false
}

func (ec eventConfig) commands() []string {
	if ec.form == formFlat {
		return ec.flat
	}
	var cmds []string
	for _, g := range ec.nested {
		for _, ref := range g.Hooks {
			cmds = append(cmds, ref.Command)
		}
	}
	return cmds
}

// hookEventOrder returns the hooks mapping keys in document order.
func hookEventOrder(raw []byte) []string {
	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil
	}
	if len(root.Content) == 0 {
		return nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value != "hooks" {
			continue
		}
		hooks := doc.Content[i+1]
		if hooks.Kind != yaml.MappingNode {
			return nil
		}
		var events []string
		for j := 0; j+1 < len(hooks.Content); j += 2 {
			events = append(events, hooks.Content[j].Value)
		}
		return events
	}
	return nil
}
