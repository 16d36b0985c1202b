package warehouse

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
)

type execCall struct {
	query string
	args  []interface{}
}

// fakeQueryer grava os comandos executados; só Exec é usado pelo cliente
type fakeQueryer struct {
	mu    sync.Mutex
	calls []execCall
	errs  []error
}

func (f *fakeQueryer) Exec(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, execCall{query: query, args: args})
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return nil, err
	}
	return nil, nil
}

func (f *fakeQueryer) Query(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeQueryer) QueryRow(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

var countrySchema = domain.Schema{
	{Name: "user_id", Type: "TEXT"},
	{Name: "ad_id", Type: "TEXT"},
	{Name: "date_start", Type: "DATE"},
	{Name: "country", Type: "TEXT"},
	{Name: "spend", Type: "NUMERIC"},
	{Name: "actions", Type: "JSONB"},
	{Name: "reach", Type: "BIGINT"},
	{Name: "loaded_at", Type: "TIMESTAMPTZ"},
}

func TestSplitQualifiedName(t *testing.T) {
	dataset, table, err := SplitQualifiedName("proj.meta_ads.ads_insights_daily")
	require.NoError(t, err)
	assert.Equal(t, "meta_ads", dataset)
	assert.Equal(t, "ads_insights_daily", table)

	dataset, table, err = SplitQualifiedName("meta_ads.ads_insights_daily")
	require.NoError(t, err)
	assert.Equal(t, "meta_ads", dataset)
	assert.Equal(t, "ads_insights_daily", table)

	_, _, err = SplitQualifiedName("ads_insights_daily")
	assert.Error(t, err)
}

func TestCreateTableSQL(t *testing.T) {
	query := CreateTableSQL("meta_ads", "ads_insights_daily_country", domain.Schema{
		{Name: "ad_id", Type: "TEXT"},
		{Name: "spend", Type: "NUMERIC"},
	})

	assert.Equal(t, `CREATE TABLE IF NOT EXISTS "meta_ads"."ads_insights_daily_country" ("ad_id" TEXT, "spend" NUMERIC)`, query)
}

func TestPostgresClient_GetOrCreateTable(t *testing.T) {
	conn := &fakeQueryer{}
	client := NewPostgresClient(conn)

	handle, err := client.GetOrCreateTable(context.Background(), "proj.meta_ads.ads_insights_daily_country", countrySchema)

	require.NoError(t, err)
	assert.Equal(t, "proj.meta_ads.ads_insights_daily_country", handle.QualifiedName)
	assert.Equal(t, countrySchema, handle.Schema)
	require.Len(t, conn.calls, 2)
	assert.Equal(t, `CREATE SCHEMA IF NOT EXISTS "meta_ads"`, conn.calls[0].query)
	assert.Contains(t, conn.calls[1].query, `"meta_ads"."ads_insights_daily_country"`)
}

func TestPostgresClient_GetOrCreateTableToleratesConcurrentCreation(t *testing.T) {
	conn := &fakeQueryer{errs: []error{&pq.Error{Code: "23505"}}}

	_, err := NewPostgresClient(conn).GetOrCreateTable(context.Background(), "p.d.t", countrySchema)
	assert.NoError(t, err)
}

func TestPostgresClient_GetOrCreateTableFails(t *testing.T) {
	boom := errors.New("permission denied")
	conn := &fakeQueryer{errs: []error{nil, boom}}

	_, err := NewPostgresClient(conn).GetOrCreateTable(context.Background(), "p.d.t", countrySchema)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestPostgresClient_Insert(t *testing.T) {
	loadedAt := time.Date(2024, 5, 2, 3, 0, 0, 0, time.UTC)
	conn := &fakeQueryer{}
	client := NewPostgresClient(conn)
	client.now = func() time.Time { return loadedAt }

	record := domain.InsightRecord{
		UserID:     "u1",
		AdID:       "ad1",
		Period:     domain.PeriodDaily,
		Breakdowns: domain.Breakdown{"country"},
		Rows: []domain.InsightRow{
			{
				Dimensions: map[string]string{"country": "BR"},
				DateStart:  "2024-05-01",
				Metrics: map[string]any{
					"spend":   "3.50",
					"actions": []any{map[string]any{"action_type": "link_click", "value": "4"}},
				},
			},
			{
				Dimensions: map[string]string{"country": "PT"},
				DateStart:  "2024-05-01",
				Metrics:    map[string]any{"spend": "1.00", "reach": int64(7)},
			},
		},
	}

	table := &domain.TableHandle{QualifiedName: "proj.meta_ads.ads_insights_daily_country", Schema: countrySchema}
	require.NoError(t, client.Insert(context.Background(), table, record))

	require.Len(t, conn.calls, 1)
	call := conn.calls[0]
	assert.Equal(t,
		`INSERT INTO "meta_ads"."ads_insights_daily_country" ("user_id","ad_id","date_start","country","spend","actions","reach","loaded_at") VALUES ($1,$2,$3,$4,$5,$6,$7,$8),($9,$10,$11,$12,$13,$14,$15,$16)`,
		call.query,
	)
	assert.Equal(t, []interface{}{
		"u1",
		"ad1",
		"2024-05-01",
		"BR",
		"3.50",
		`[{"action_type":"link_click","value":"4"}]`,
		nil,
		loadedAt,
		"u1",
		"ad1",
		"2024-05-01",
		"PT",
		"1.00",
		nil,
		int64(7),
		loadedAt,
	}, call.args)
}

func TestPostgresClient_InsertWithoutRowsIsNoop(t *testing.T) {
	conn := &fakeQueryer{}
	client := NewPostgresClient(conn)

	record := domain.InsightRecord{UserID: "u1", AdID: "ad2", Period: domain.PeriodDaily}
	table := &domain.TableHandle{QualifiedName: "proj.meta_ads.ads_insights_daily", Schema: countrySchema}

	require.NoError(t, client.Insert(context.Background(), table, record))
	assert.Empty(t, conn.calls)
}

func TestColumnValue_EmptyDateIsNull(t *testing.T) {
	value, err := ColumnValue(domain.Column{Name: "date_stop", Type: "DATE"}, domain.InsightRecord{}, domain.InsightRow{}, time.Now())
	require.NoError(t, err)
	assert.Nil(t, value)
}
