package directv4

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// CreateWordstatReport queues a Wordstat report for the given phrases
// and returns its id. Empty geoIDs defaults to Russia.
func (c *Client) CreateWordstatReport(ctx context.Context, phrases []string, geoIDs []int64) (int64, error) {
	if len(geoIDs) == 0 {
		geoIDs = []int64{GeoRussia}
	}

	raw, err := c.call(ctx, "CreateNewWordstatReport", wordstatReportParams{
		Phrases: phrases,
		GeoIDs:  geoIDs,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create wordstat report: %w", err)
	}

	var id int64
	if err := json.Unmarshal(raw, &id); err != nil {
		return 0, fmt.Errorf("failed to parse report id: %w", err)
	}

	c.logger.Debug().Int64("report_id", id).Strs("phrases", phrases).Msg("Created wordstat report")
	return id, nil
}

// WordstatReport polls a report until the server has processed it and
// returns its SearchedWith entries. Polling stops when ctx is done.
func (c *Client) WordstatReport(ctx context.Context, reportID int64) ([]WordstatEntry, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		raw, err := c.call(ctx, "GetWordstatReport", reportID)
		if err != nil {
			return nil, fmt.Errorf("failed to get wordstat report: %w", err)
		}

		var reports []wordstatReport
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &reports); err != nil {
				return nil, fmt.Errorf("failed to parse wordstat report: %w", err)
			}
		}
		// SearchedWith appears only once the report is done
		if len(reports) > 0 && reports[0].SearchedWith != nil {
			c.logger.Debug().
				Int64("report_id", reportID).
				Int("entries", len(reports[0].SearchedWith)).
				Msg("Wordstat report ready")
			return reports[0].SearchedWith, nil
		}

		c.logger.Debug().Int64("report_id", reportID).Msg("Wordstat report pending")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// DeleteWordstatReport removes a report from the server.
func (c *Client) DeleteWordstatReport(ctx context.Context, reportID int64) error {
	if _, err := c.call(ctx, "DeleteWordstatReport", reportID); err != nil {
		return fmt.Errorf("failed to delete wordstat report: %w", err)
	}
	return nil
}

// WordstatReportList returns the reports currently held by the server.
func (c *Client) WordstatReportList(ctx context.Context) ([]WordstatReportStatus, error) {
	raw, err := c.call(ctx, "GetWordstatReportList", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list wordstat reports: %w", err)
	}

	var reports []WordstatReportStatus
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &reports); err != nil {
			return nil, fmt.Errorf("failed to parse report list: %w", err)
		}
	}
	return reports, nil
}

// DeleteAllWordstatReports removes every report and returns how many
// were deleted.
func (c *Client) DeleteAllWordstatReports(ctx context.Context) (int, error) {
	reports, err := c.WordstatReportList(ctx)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, report := range reports {
		if err := c.DeleteWordstatReport(ctx, report.ReportID); err != nil {
			return deleted, err
		}
		deleted++
	}

	c.logger.Debug().Int("count", deleted).Msg("Deleted wordstat reports")
	return deleted, nil
}
