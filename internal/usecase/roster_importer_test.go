package usecase

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/DarrellThomas/PilotLog/internal/testutil"
	"github.com/DarrellThomas/PilotLog/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRoster(rows ...string) string {
	preamble := []string{
		"Crew Roster Export,swa",
		"Totals,Block,2252,Flights,12",
		"Gauge,737,100,0,0",
		"Bid Period,2025-01",
		"Employee,114705",
		"",
		"DATE,Flight,dhd,From,Depart,To,Arrive,Block,Tail_Number,A_C_Type,TakeOff,Landing,CoPilot",
	}
	return strings.Join(append(preamble, rows...), "\n")
}

var threeLegDay = sampleRoster(
	"2025-01-15,1234,DH,KMDW,7:00,KHOU,9:10,0,N111SW,737-8H4,0,0,Deadheading",
	"2025-01-15,2345,,KHOU,10:00,KDAL,11:07,107,N222SW,737-7H4,1,0,FO  ZURCA JULIAN [114706]",
	"2025-01-15,3456,,KDAL,12:00,KMDW,14:14,214,N222SW,737-7H4,0,1,FO  ZURCA JULIAN [114706]",
)

func TestImportThreeRowFile(t *testing.T) {
	store := testutil.NewMemStore()
	importer := NewRosterImporter(store, logger.NewNop(), nil)

	result, err := importer.ImportContent(context.Background(), "roster.csv", threeLegDay)
	require.NoError(t, err)

	assert.Equal(t, 3, result.RowsProcessed)
	assert.Equal(t, 3, result.RowsImported)
	assert.Equal(t, 0, result.RowsSkipped)
	assert.Equal(t, 0, result.RowsDuplicate)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 67+134, result.NewBlockMinutes)
	assert.Equal(t, "2025-01-15", result.DateRangeStart)
	assert.Equal(t, "2025-01-15", result.DateRangeEnd)

	require.Len(t, store.FlightRows, 3)
	deadhead := store.FlightRows[0]
	assert.True(t, deadhead.IsDeadhead)
	assert.Equal(t, 0, deadhead.BlockMinutes)
	assert.Equal(t, result.BatchID, deadhead.ImportBatchID)

	batch, err := store.Batches().GetByID(context.Background(), result.BatchID)
	require.NoError(t, err)
	require.NotNil(t, batch)
	assert.Equal(t, "roster.csv", batch.Filename)
	assert.Equal(t, 3, batch.RowsProcessed)
	assert.Equal(t, 3, batch.RowsImported)
	assert.Equal(t, 0, batch.RowsSkipped)
	assert.Equal(t, 0, batch.RowsDuplicate)
}

func TestImportIsIdempotent(t *testing.T) {
	store := testutil.NewMemStore()
	ctx := context.Background()

	first, err := NewRosterImporter(store, logger.NewNop(), nil).ImportContent(ctx, "roster.csv", threeLegDay)
	require.NoError(t, err)
	require.Equal(t, 3, first.RowsImported)

	second, err := NewRosterImporter(store, logger.NewNop(), nil).ImportContent(ctx, "roster.csv", threeLegDay)
	require.NoError(t, err)

	assert.Equal(t, 0, second.RowsImported)
	assert.Equal(t, first.RowsProcessed, second.RowsDuplicate)
	assert.Equal(t, 0, second.NewBlockMinutes)
	assert.Empty(t, second.DateRangeStart)
	assert.Len(t, store.FlightRows, 3, "re-import must not add rows")
	assert.NotEqual(t, first.BatchID, second.BatchID)
}

func TestImportCatchesWithinFileDuplicates(t *testing.T) {
	store := testutil.NewMemStore()
	content := sampleRoster(
		"2025-01-15,1234,,KHOU,10:00,KDAL,11:07,107,N222SW,737-7H4,1,0,",
		"2025-01-15,1234,,KHOU,10:00,KDAL,11:07,107,N222SW,737-7H4,1,0,",
	)

	result, err := NewRosterImporter(store, logger.NewNop(), nil).ImportContent(context.Background(), "roster.csv", content)
	require.NoError(t, err)

	assert.Equal(t, 2, result.RowsProcessed)
	assert.Equal(t, 1, result.RowsImported)
	assert.Equal(t, 1, result.RowsDuplicate)
	assert.Len(t, store.FlightRows, 1)
}

func TestImportSkipsInvalidRows(t *testing.T) {
	store := testutil.NewMemStore()
	content := sampleRoster(
		"2025-01-15,1234,,HOU,10:00,KDAL,11:07,107,N222SW,737-7H4,1,0,", // 3-char origin, line 8
		"2025-01-15,2345,,KHOU,12:00,KDAL,13:07,107,N222SW,737-7H4,1,0,",
	)

	result, err := NewRosterImporter(store, logger.NewNop(), nil).ImportContent(context.Background(), "roster.csv", content)
	require.NoError(t, err)

	assert.Equal(t, 2, result.RowsProcessed)
	assert.Equal(t, 1, result.RowsImported)
	assert.Equal(t, 1, result.RowsSkipped)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 8, result.Errors[0].Row)
	assert.Equal(t, "Invalid origin ICAO code: HOU", result.Errors[0].Message)
}

func TestImportReportsParseErrorsWithoutAbort(t *testing.T) {
	store := testutil.NewMemStore()
	content := sampleRoster(
		"not-a-date,1234,,KHOU,10:00,KDAL,11:07,107,N222SW,737-7H4,1,0,", // line 8
		"2025-01-15,2345,,KHOU,12:00,KDAL,13:07,107,N222SW,737-7H4,1,0,",
	)

	result, err := NewRosterImporter(store, logger.NewNop(), nil).ImportContent(context.Background(), "roster.csv", content)
	require.NoError(t, err)

	// Parse drops never reach the counters; they only surface in the error list.
	assert.Equal(t, 1, result.RowsProcessed)
	assert.Equal(t, 1, result.RowsImported)
	assert.Equal(t, 0, result.RowsSkipped)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 8, result.Errors[0].Row)
}

func TestImportEmptyFileShortCircuits(t *testing.T) {
	store := testutil.NewMemStore()

	result, err := NewRosterImporter(store, logger.NewNop(), nil).ImportContent(context.Background(), "empty.csv", sampleRoster())
	require.NoError(t, err)

	assert.Equal(t, 0, result.RowsProcessed)
	assert.Equal(t, 0, result.RowsImported)
	assert.Empty(t, store.FlightRows)
	assert.Empty(t, store.BatchRows, "empty file must not create a batch row")
}

func TestImportRollsBackOnStoreFailure(t *testing.T) {
	store := testutil.NewMemStore()
	store.FlightCreateErr = errors.New("connection lost")

	_, err := NewRosterImporter(store, logger.NewNop(), nil).ImportContent(context.Background(), "roster.csv", threeLegDay)
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection lost")

	assert.Empty(t, store.FlightRows, "no partial flight rows after rollback")
	assert.Empty(t, store.BatchRows, "batch row rolls back with the flights")
}

func TestImportFileReadsFromDisk(t *testing.T) {
	store := testutil.NewMemStore()
	path := t.TempDir() + "/roster.csv"
	require.NoError(t, os.WriteFile(path, []byte(threeLegDay), 0o644))

	result, err := NewRosterImporter(store, logger.NewNop(), nil).ImportFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "roster.csv", result.Filename)
	assert.Equal(t, 3, result.RowsImported)
}

func TestImportFileMissing(t *testing.T) {
	store := testutil.NewMemStore()
	_, err := NewRosterImporter(store, logger.NewNop(), nil).ImportFile(context.Background(), "/no/such/file.csv")
	assert.Error(t, err)
}
