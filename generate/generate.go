// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package generate

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrEmptyCompletion = errors.New("generator returned no content")
	ErrNoStatements    = errors.New("generator returned no statements")
)

// Generator produces text from a system instruction and a user prompt
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

const (
	policySystem     = "You are a policy writer who drafts comprehensive, balanced policy proposals."
	statementsSystem = "You are a democratic summarizer who produces distinct representative statements from a policy."
)

// PolicyPrompt asks for a multi-paragraph proposal on topic
func PolicyPrompt(topic string) string {
	return "Create a detailed policy proposal about: " + topic + "\n\n" +
		"Write a comprehensive policy text (3-5 paragraphs) covering the key aspects, " +
		"considerations and recommendations for this topic. Keep it balanced and thoughtful."
}

// StatementsPrompt asks for five viewpoints on policyText, one per line
func StatementsPrompt(policyText string) string {
	return "Policy: " + policyText + "\n\n" +
		"Generate 5 distinct, concise statements summarizing diverse viewpoints citizens might have."
}

// Policy drafts policy text for a topic
func Policy(ctx context.Context, g Generator, topic string) (string, error) {
	text, err := g.Generate(ctx, policySystem, PolicyPrompt(topic))
	if err != nil {
		return "", fmt.Errorf("generate policy: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

// Statements generates candidate statements for a policy text
func Statements(ctx context.Context, g Generator, policyText string) ([]string, error) {
	text, err := g.Generate(ctx, statementsSystem, StatementsPrompt(policyText))
	if err != nil {
		return nil, fmt.Errorf("generate statements: %w", err)
	}
	statements := ParseStatements(text)
	if len(statements) == 0 {
		return nil, ErrNoStatements
	}
	return statements, nil
}

var listMarker = regexp.MustCompile(`^(\d+\.|-)`)

// ParseStatements splits generator output into one statement per
// non-blank line, dropping a leading "N." or "-" list marker
func ParseStatements(text string) []string {
	statements := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimSpace(listMarker.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		statements = append(statements, line)
	}
	return statements
}
