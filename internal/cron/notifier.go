// Package cron runs the background compliance notifier.
package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jamaalx/transfabilog-sub001/internal/catalog"
	"github.com/Jamaalx/transfabilog-sub001/internal/compliance"
	"github.com/Jamaalx/transfabilog-sub001/internal/database"
)

// StartNotifier launches a background goroutine that runs once immediately
// and then once per day, generating notifications for every document the
// engine flags as needing attention.
func StartNotifier(db database.Service) {
	go func() {
		runCycle(db)

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			runCycle(db)
		}
	}()

	log.Println("[cron] compliance notifier started – runs every 24 h")
}

// ownerEntity is one driver or vehicle the cycle evaluates.
type ownerEntity struct {
	Type    string
	ID      string
	Name    string
	Profile compliance.Profile
}

// runCycle runs the compliance engine over every driver and vehicle and
// inserts a notification per alerting document. Notifications are
// de-duplicated by (entity_id, same day).
func runCycle(db database.Service) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool := db.GetPool()
	now := time.Now()

	entities, err := loadEntities(ctx, pool)
	if err != nil {
		log.Printf("[cron] error loading entities: %v", err)
		return
	}
	docsByOwner, err := loadDocuments(ctx, pool)
	if err != nil {
		log.Printf("[cron] error loading documents: %v", err)
		return
	}
	recipients, err := loadRecipients(ctx, pool)
	if err != nil {
		log.Printf("[cron] error loading recipients: %v", err)
		return
	}

	inserted := 0
	evaluated := 0

	for _, e := range entities {
		cat := catalog.Drivers()
		if e.Type == "vehicle" {
			cat = catalog.Vehicles()
		}

		report := compliance.BuildReport(cat, docsByOwner[ownerKey{e.Type, e.ID}], e.Profile, now)

		for _, alert := range report.Alerts {
			evaluated++

			// Only urgent tiers and per-type threshold hits become
			// notifications; soft warnings stay on the dashboard.
			if !alert.Urgent && !needsAlertFromReport(report, alert) {
				continue
			}

			title, message := formatNotification(e, alert)
			for _, userID := range recipients {
				notified, err := notifiedToday(ctx, pool, userID, alert.DocumentID, now)
				if err != nil {
					// Skip rather than insert: a failed dedup check must not
					// double-send today's notification.
					log.Printf("[cron] dedup check error: %v", err)
					continue
				}
				if notified {
					continue
				}
				_, err = pool.Exec(ctx, `
					INSERT INTO notifications (user_id, title, message, type, entity_type, entity_id)
					VALUES ($1, $2, $3, $4, 'document', $5)
				`, userID, title, message, "document_"+alert.Status, alert.DocumentID)
				if err != nil {
					log.Printf("[cron] insert notification error: %v", err)
					continue
				}
				inserted++
			}
		}
	}

	log.Printf("[cron] compliance check complete – %d new notifications from %d alerts", inserted, evaluated)
}

// needsAlertFromReport re-reads the per-type NeedsAlert gate for an alert
// record out of the report's byType map.
func needsAlertFromReport(report compliance.Report, alert compliance.AlertRecord) bool {
	ts, ok := report.ByType[alert.DocType]
	if !ok {
		return false
	}
	return compliance.NeedsAlert(ts.Config, ts.DaysUntilExpiry)
}

// formatNotification renders the title and message for one alert.
func formatNotification(e ownerEntity, alert compliance.AlertRecord) (string, string) {
	owner := fmt.Sprintf("%s %s", e.Type, e.Name)

	switch alert.Status {
	case compliance.StatusExpired:
		days := 0
		if alert.DaysUntilExpiry != nil {
			days = -*alert.DaysUntilExpiry
		}
		return fmt.Sprintf("🚨 %s – EXPIRED", alert.Name),
			fmt.Sprintf("%s: %s expired %d days ago. Renew immediately.", owner, alert.Name, days)
	case compliance.StatusCritical:
		return fmt.Sprintf("⚠️ %s – Expires This Week", alert.Name),
			fmt.Sprintf("%s: %s expires in %d days.", owner, alert.Name, derefDays(alert.DaysUntilExpiry))
	case compliance.StatusReviewRecommended:
		return fmt.Sprintf("🔍 %s – Review Due", alert.Name),
			fmt.Sprintf("%s: %s should be re-verified.", owner, alert.Name)
	default:
		return fmt.Sprintf("📋 %s – Expiring Soon", alert.Name),
			fmt.Sprintf("%s: %s expires in %d days. Please renew promptly.", owner, alert.Name, derefDays(alert.DaysUntilExpiry))
	}
}

func derefDays(d *int) int {
	if d == nil {
		return 0
	}
	return *d
}

type ownerKey struct {
	Type string
	ID   string
}

func loadEntities(ctx context.Context, pool *pgxpool.Pool) ([]ownerEntity, error) {
	var entities []ownerEntity

	rows, err := pool.Query(ctx, `
		SELECT id, name, has_international_routes, has_adr
		FROM drivers WHERE status != 'inactive'
	`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		e := ownerEntity{Type: "driver"}
		if err := rows.Scan(&e.ID, &e.Name, &e.Profile.HasInternationalRoutes, &e.Profile.HasADR); err != nil {
			continue
		}
		entities = append(entities, e)
	}
	rows.Close()

	rows, err = pool.Query(ctx, `
		SELECT id, plate_number, has_international_routes, has_adr, has_frigo
		FROM vehicles WHERE status != 'retired'
	`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		e := ownerEntity{Type: "vehicle"}
		if err := rows.Scan(&e.ID, &e.Name, &e.Profile.HasInternationalRoutes, &e.Profile.HasADR, &e.Profile.HasFrigo); err != nil {
			continue
		}
		entities = append(entities, e)
	}
	rows.Close()

	return entities, nil
}

func loadDocuments(ctx context.Context, pool *pgxpool.Pool) (map[ownerKey][]compliance.Document, error) {
	rows, err := pool.Query(ctx, `
		SELECT id, owner_type, owner_id, doc_type, COALESCE(doc_number, ''), COALESCE(expiry_date::text, '')
		FROM documents
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byOwner := make(map[ownerKey][]compliance.Document)
	for rows.Next() {
		var doc compliance.Document
		var ownerType, expiryRaw string
		if err := rows.Scan(&doc.ID, &ownerType, &doc.OwnerID, &doc.DocType, &doc.DocNumber, &expiryRaw); err != nil {
			continue
		}
		doc.ExpiryDate = compliance.ParseDate(expiryRaw)
		key := ownerKey{ownerType, doc.OwnerID}
		byOwner[key] = append(byOwner[key], doc)
	}
	return byOwner, rows.Err()
}

// loadRecipients returns the users who receive compliance notifications.
func loadRecipients(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	rows, err := pool.Query(ctx,
		`SELECT id FROM users WHERE role IN ('dispatcher', 'admin', 'super_admin')`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if rows.Scan(&id) == nil {
			ids = append(ids, id)
		}
	}
	return ids, rows.Err()
}

// rowQuerier is the single-row query surface of *pgxpool.Pool.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// notifiedToday reports whether a notification for this document and user
// was already created today.
func notifiedToday(ctx context.Context, q rowQuerier, userID, documentID string, now time.Time) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM notifications
			WHERE user_id     = $1
			  AND entity_type = 'document'
			  AND entity_id   = $2
			  AND created_at::date = $3::date
		)
	`, userID, documentID, now.Format("2006-01-02")).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
