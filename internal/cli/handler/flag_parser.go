// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/models"
	boardservice "github.com/thenoetrevino/quadro/internal/services/board"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd       *cobra.Command
	formatter *cli.OutputFormatter
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command, formatter *cli.OutputFormatter) *FlagParser {
	return &FlagParser{
		cmd:       cmd,
		formatter: formatter,
	}
}

// ParseTaskID extracts task ID from a flag
func (p *FlagParser) ParseTaskID(flagName string) (int, error) {
	taskID, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if taskID <= 0 {
		return 0, fmt.Errorf("%w: %s must be greater than 0", boardservice.ErrInvalidTaskID, flagName)
	}
	return taskID, nil
}

// ParseStatus extracts a required status flag. Both the key ("fazendo")
// and the label ("Fazendo") are accepted.
func (p *FlagParser) ParseStatus(flagName string) (models.Status, error) {
	value, err := p.ParseString(flagName)
	if err != nil {
		return "", err
	}
	return parseStatusValue(value)
}

// ParseStatusOptional extracts an optional status flag; empty means unset
func (p *FlagParser) ParseStatusOptional(flagName string) (models.Status, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	return parseStatusValue(value)
}

func parseStatusValue(value string) (models.Status, error) {
	value = strings.TrimSpace(value)
	for _, opt := range models.StatusOptions {
		if strings.EqualFold(value, opt.Label) {
			return opt.Value, nil
		}
	}

	status, err := models.ParseStatus(strings.ToLower(value))
	if err != nil {
		return "", fmt.Errorf("%w: %q", boardservice.ErrInvalidStatus, value)
	}
	return status, nil
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", cli.Exit(cli.ExitUsage, fmt.Errorf("%s is required", flagName))
	}
	return value, nil
}

// ParseBool extracts a boolean flag
func (p *FlagParser) ParseBool(flagName string) (bool, error) {
	return p.cmd.Flags().GetBool(flagName)
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	return jsonOutput, quietMode, nil
}
