package main

import (
	"chat-relay/domain"
	"chat-relay/repositories"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "./data/relay", "Path to the relay badger DB")
	limit := flag.Int("limit", 100, "Maximum number of failures to print, newest first")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	journal := repositories.NewDeliveryJournal(db, logs.GetLoggerFromLevel(slog.LevelError), 0)
	records, err := journal.Recent(*limit)
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"At", "Event", "Kind", "Scope", "Connection", "Reason"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, record := range records {
		table.Append(toRow(record))
	}
	table.Render()
	fmt.Printf("\n%d failure(s)\n", len(records))
}

func toRow(record domain.FailureRecord) []string {
	// First 8 characters are enough to correlate with the logs
	eventID := record.EventID.String()
	if len(eventID) > 8 {
		eventID = eventID[:8]
	}
	return []string{
		record.At.Format("2006-01-02 15:04:05.000"),
		eventID,
		string(record.Kind),
		record.Scope.String(),
		string(record.ConnectionID),
		record.Reason,
	}
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil {
		// A crashed relay may leave the value log needing a truncate, which read-only mode refuses
		if strings.Contains(err.Error(), "Log truncate required") {
			repaired, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil).WithBypassLockGuard(true))
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}
			_ = repaired.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
