package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableName(t *testing.T) {
	tests := []struct {
		name       string
		period     Period
		breakdowns Breakdown
		expected   string
	}{
		{"daily com duas dimensões", PeriodDaily, Breakdown{"age", "gender"}, "ads_insights_daily_age_gender"},
		{"lifetime com duas dimensões", PeriodLifetime, Breakdown{"age", "gender"}, "ads_insights_lifetime_age_gender"},
		{"ordem invertida gera outro nome", PeriodDaily, Breakdown{"gender", "age"}, "ads_insights_daily_gender_age"},
		{"sem breakdown", PeriodLifetime, Breakdown{}, "ads_insights_lifetime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TableName(tt.period, tt.breakdowns))
			// Mesma entrada, mesmo resultado
			assert.Equal(t, TableName(tt.period, tt.breakdowns), TableName(tt.period, tt.breakdowns.Clone()))
		})
	}

	assert.NotEqual(t,
		TableName(PeriodDaily, Breakdown{"age", "gender"}),
		TableName(PeriodDaily, Breakdown{"gender", "age"}),
	)
}

func TestQualifiedTableName(t *testing.T) {
	assert.Equal(t, "proj.ads.ads_insights_daily_country", QualifiedTableName("proj", "ads", "ads_insights_daily_country"))
}

func TestParseAccountSource(t *testing.T) {
	source, err := ParseAccountSource(" Business ")
	require.NoError(t, err)
	assert.Equal(t, AccountSourceBusiness, source)

	source, err = ParseAccountSource("personal")
	require.NoError(t, err)
	assert.Equal(t, AccountSourcePersonal, source)

	_, err = ParseAccountSource("partner")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSource))

	var sourceErr *UnknownSourceError
	require.ErrorAs(t, err, &sourceErr)
	assert.Equal(t, "partner", sourceErr.Source)
}

func TestParseBreakdowns(t *testing.T) {
	combos, err := ParseBreakdowns([]string{"age,gender", " country ", ""})
	require.NoError(t, err)
	assert.Equal(t, []Breakdown{{"age", "gender"}, {"country"}}, combos)

	_, err = ParseBreakdowns([]string{"age,,gender"})
	assert.Error(t, err)

	_, err = ParseBreakdowns([]string{"country", "country"})
	assert.Error(t, err)
}

func TestPeriod(t *testing.T) {
	assert.Equal(t, "1", PeriodDaily.TimeIncrement())
	assert.Equal(t, "", PeriodLifetime.TimeIncrement())

	period, err := ParsePeriod("LIFETIME")
	require.NoError(t, err)
	assert.Equal(t, PeriodLifetime, period)

	_, err = ParsePeriod("weekly")
	assert.Error(t, err)
}

func TestTokenValid(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, (&Token{AccessToken: "abc"}).Valid(now))
	assert.True(t, (&Token{AccessToken: "abc", ExpiresAt: now.Add(time.Hour)}).Valid(now))
	assert.False(t, (&Token{AccessToken: "abc", ExpiresAt: now}).Valid(now))
	assert.False(t, (&Token{ExpiresAt: now.Add(time.Hour)}).Valid(now))

	var nilToken *Token
	assert.False(t, nilToken.Valid(now))
}

func TestMergeAdAccounts(t *testing.T) {
	merged := MergeAdAccounts(
		[]AdAccount{{ID: "act_1"}, {ID: "act_2"}},
		[]AdAccount{{ID: "act_2", Name: "dup"}, {ID: "act_3"}},
	)

	assert.Equal(t, []AdAccount{{ID: "act_1"}, {ID: "act_2"}, {ID: "act_3"}}, merged)
}

func TestMetricFields(t *testing.T) {
	metrics := MetricFields()
	assert.NotContains(t, metrics, "ad_id")
	assert.NotContains(t, metrics, "date_start")
	assert.Contains(t, metrics, "impressions")
	assert.Contains(t, metrics, "spend")
}

func TestErrorsUnwrap(t *testing.T) {
	cause := &AuthorizationError{Code: 190, Message: "Session has expired"}
	fanoutErr := &FanoutError{Request: InsightRequest{AdID: "1", Period: PeriodDaily}, Cause: cause}
	stageErr := &StageError{RunID: "r1", Stage: StageInsights, Err: fanoutErr}

	assert.True(t, IsAuthorization(stageErr))

	var target *FanoutError
	require.ErrorAs(t, stageErr, &target)
	assert.Equal(t, "1", target.Request.AdID)

	summary := &FanoutSummaryError{Units: 4, Failures: []*FanoutError{fanoutErr}}
	assert.True(t, errors.Is(summary, fanoutErr))

	transient := fmt.Errorf("wrapped: %w", &TransientRemoteError{Path: "/x", StatusCode: 429})
	assert.True(t, errors.Is(transient, ErrRemoteTransient))
}
