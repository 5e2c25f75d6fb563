// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "WritingStyle", "CompanyIntel")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// WritingStyleSchema returns the extraction schema for analyzing a user's
// own cover letters. Extracts tone, sentence length, connectives, and
// salutation so generated letters can imitate them.
func WritingStyleSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "WritingStyle",
		Description: `You are an expert writing analyst. Your task is to characterize the author's writing style from the cover letters below.
Describe how the author writes, not what they write about.`,
		Fields: []SchemaField{
			{
				Name:        "tone",
				Type:        "\"string\"",
				Description: "Overall tone: 'professional', 'enthusiastic', 'technical', or 'conversational'",
				Required:    true,
			},
			{
				Name:        "sentence_length",
				Type:        "\"string\"",
				Description: "Typical sentence length: 'short', 'medium', or 'long'",
				Required:    true,
			},
			{
				Name:        "connectives",
				Type:        "[\"string\"]",
				Description: "Transition words the author actually uses, copied verbatim",
				Required:    true,
			},
			{
				Name:        "salutation",
				Type:        "\"string\"",
				Description: "The greeting formula the author opens with, copied verbatim",
				Required:    false,
			},
		},
	}
}

// CompanyIntelSchema returns the extraction schema for company research pages.
// Extracts values, recent news, and technology stack signals.
func CompanyIntelSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "CompanyIntel",
		Description: `You are an expert company researcher. Your task is to extract facts about a company from the page text below.
Only report facts present in the text, never invent or embellish.`,
		Fields: []SchemaField{
			{
				Name:        "values",
				Type:        "[\"string\"]",
				Description: "Stated company values or culture signals, copied verbatim",
				Required:    true,
			},
			{
				Name:        "news",
				Type:        "[\"string\"]",
				Description: "Recent announcements, launches, or milestones",
				Required:    false,
			},
			{
				Name:        "tech_stack",
				Type:        "[\"string\"]",
				Description: "Technologies, products, or tools the company mentions",
				Required:    false,
			},
			{
				Name:        "quote",
				Type:        "{\"text\": \"string\", \"author\": \"string\"}",
				Description: "One short quotable sentence from the page (mission statement or attributed leadership quote), copied verbatim; omit author if unattributed",
				Required:    false,
			},
		},
	}
}
