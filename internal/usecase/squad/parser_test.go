package squad

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"squadBot/internal/domain"
)

func TestParse_HelpWhenOnlyKeyword(t *testing.T) {
	p := NewParser(zaptest.NewLogger(t))

	for _, raw := range []string{"!sq", "sq", "whatever", ""} {
		out, err := p.Parse(raw, []string{"A", "B"})
		require.NoError(t, err, raw)
		assert.Equal(t, domain.Help(HelpText), out, raw)
	}
}

func TestParse_TeamSizes(t *testing.T) {
	p := NewParser(zaptest.NewLogger(t))

	cases := map[string]domain.TeamSize{
		"!sq duo":   domain.Duo,
		"!sq Duo":   domain.Duo,
		"!sq TRIO":  domain.Trio,
		"!sq squad": domain.Squad,
		"!sq SQuad": domain.Squad,
	}
	for raw, want := range cases {
		out, err := p.Parse(raw, nil)
		require.NoError(t, err, raw)
		req, ok := out.(domain.Request)
		require.True(t, ok, raw)
		assert.Equal(t, want, req.TeamSize, raw)
	}
}

func TestParse_InvalidTeamSetup(t *testing.T) {
	p := NewParser(zaptest.NewLogger(t))

	out, err := p.Parse("!sq pentad", []string{"A"})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrInvalidTeamSetup)

	var perr *domain.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "pentad", perr.Detail)
}

func TestParse_DoubleSpaceKeepsEmptyToken(t *testing.T) {
	p := NewParser(zaptest.NewLogger(t))

	_, err := p.Parse("!sq  duo", nil)

	var perr *domain.ParseError
	require.True(t, errors.As(err, &perr))
	assert.ErrorIs(t, err, domain.ErrInvalidTeamSetup)
	assert.Equal(t, "", perr.Detail)
}

func TestParse_Exclusion(t *testing.T) {
	p := NewParser(zaptest.NewLogger(t))

	out, err := p.Parse("!sq duo !B", []string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Equal(t, domain.Request{TeamSize: domain.Duo, Participants: []string{"A", "C"}}, out)
}

func TestParse_ExtraInclusion(t *testing.T) {
	p := NewParser(zaptest.NewLogger(t))

	out, err := p.Parse("!sq duo Z", []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "Z"}, out.(domain.Request).Participants)
}

func TestParse_ExclusionsAndExtrasMixed(t *testing.T) {
	p := NewParser(zaptest.NewLogger(t))

	present := []string{"Ann", "Bo", "Cez", "Dot"}
	out, err := p.Parse("!sq trio X !Bo Y !Dot", present)
	require.NoError(t, err)

	req := out.(domain.Request)
	assert.Equal(t, domain.Trio, req.TeamSize)
	assert.Equal(t, []string{"Ann", "Cez", "X", "Y"}, req.Participants)
	assert.Equal(t, []string{"Ann", "Bo", "Cez", "Dot"}, present, "present list must not be modified")
}

func TestParse_ExclusionIsCaseSensitiveByDefault(t *testing.T) {
	p := NewParser(zaptest.NewLogger(t))

	out, err := p.Parse("!sq duo !bo", []string{"Ann", "Bo"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann", "Bo"}, out.(domain.Request).Participants)
}

func TestParse_ExclusionFoldPolicy(t *testing.T) {
	p := NewParser(zaptest.NewLogger(t), WithMatchPolicy(MatchFold))

	out, err := p.Parse("!sq duo !bo", []string{"Ann", "Bo", "BO"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann"}, out.(domain.Request).Participants)
}

func TestParse_DuplicatesKept(t *testing.T) {
	p := NewParser(nil)

	out, err := p.Parse("!sq duo A", []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "A"}, out.(domain.Request).Participants)
}

func TestParse_NoPresentNoExtras(t *testing.T) {
	p := NewParser(nil)

	out, err := p.Parse("!sq squad", nil)
	require.NoError(t, err)
	assert.Empty(t, out.(domain.Request).Participants)
}
