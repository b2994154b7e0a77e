package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCLIArgs_RewritesSingleDashLongFlag(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"-catalog", "catalog.json"})

	assert.Equal(t, []string{"--catalog", "catalog.json"}, args)
	assert.NotEmpty(t, notes)
}

func TestNormalizeCLIArgs_RewritesTypoFlag(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"--catalgo", "catalog.json"})

	assert.Equal(t, []string{"--catalog", "catalog.json"}, args)
	assert.NotEmpty(t, notes)
}

func TestNormalizeCLIArgs_RewritesCommandTypo(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"catgories", "--catalog", "catalog.json"})

	assert.Equal(t, []string{"categories", "--catalog", "catalog.json"}, args)
	assert.NotEmpty(t, notes)
}

func TestNormalizeCLIArgs_RewritesBareFlagAfterFlagOnlyCommand(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"categories", "catalog", "catalog.json"})

	assert.Equal(t, []string{"categories", "--catalog", "catalog.json"}, args)
	assert.NotEmpty(t, notes)
}

func TestNormalizeCLIArgs_DoesNotRewriteRootPhrases(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"json", "--catalog", "catalog.json"})

	assert.Equal(t, []string{"json", "--catalog", "catalog.json"}, args)
	assert.Empty(t, notes)
}

func TestNormalizeCLIArgs_DoesNotRewritePantryIngredientNames(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"pantry", "toggle", "milk"})

	assert.Equal(t, []string{"pantry", "toggle", "milk"}, args)
	assert.Empty(t, notes)
}

func TestNormalizeCLIArgs_DoesNotRewriteCompletionPositionalArgs(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"completion", "zsh"})

	assert.Equal(t, []string{"completion", "zsh"}, args)
	assert.Empty(t, notes)
}

func TestNormalizeCLIArgs_RespectsDoubleDashBoundary(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"categories", "--", "catalog", "catalog.json"})

	assert.Equal(t, []string{"categories", "--", "catalog", "catalog.json"}, args)
	assert.Empty(t, notes)
}

func TestNormalizeCLIArgs_LeavesKnownShorthandUntouched(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"-c", "catalog.json", "-n", "5"})

	assert.Equal(t, []string{"-c", "catalog.json", "-n", "5"}, args)
	assert.Empty(t, notes)
}

func TestNormalizeCLIArgs_RewritesKeyValueSyntax(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"categories", "catalog=catalog.json"})

	assert.Equal(t, []string{"categories", "--catalog=catalog.json"}, args)
	assert.NotEmpty(t, notes)
}

func TestExplainCLIError_UnknownFlagIncludesSuggestionAndExamples(t *testing.T) {
	msg := explainCLIError(errors.New("unknown flag: --catalgo"))

	assert.Contains(t, msg, "Try `--catalog`.")
	assert.Contains(t, msg, "larder \"2 cups flour\" --catalog catalog.json")
}

func TestExplainCLIError_UnknownCommandIncludesSuggestionAndExamples(t *testing.T) {
	msg := explainCLIError(errors.New("unknown command \"catgories\" for \"larder\""))

	assert.Contains(t, msg, "Did you mean `categories`?")
	assert.Contains(t, msg, "larder categories --catalog catalog.json")
}

func TestResolveFlagName_Aliases(t *testing.T) {
	for alias, want := range map[string]string{
		"catalogue": "catalog",
		"cfg":       "config",
		"max":       "limit",
	} {
		got, ok := resolveFlagName(alias)
		assert.True(t, ok, alias)
		assert.Equal(t, want, got, alias)
	}
}

func TestClosestMatch_RejectsDistantInput(t *testing.T) {
	_, ok := closestMatch("zucchini", knownCommands, 2)
	assert.False(t, ok)
}
