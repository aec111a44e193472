package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/social-insights-api/infrastructure/database"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

const metricSnapshotsTable = "metric_snapshots"

var snapshotColumns = []string{
	"id", "owner_id", "platform", "date",
	"impressions", "reach", "engagement", "clicks", "conversions", "followers",
	"created_at", "updated_at",
}

type MetricSnapshotRepository interface {
	SaveOrUpdate(ctx context.Context, snapshots []*domain.MetricSnapshot) error
	ListByOwner(ctx context.Context, ownerID, startDate, endDate string) ([]*domain.MetricSnapshot, error)
	DeleteByOwnerAndPlatform(ctx context.Context, ownerID string, platform domain.PlatformKey) error
}

type metricSnapshotRepository struct {
	conn database.Conn
	now  func() time.Time
}

func NewMetricSnapshotRepository(conn database.Conn) MetricSnapshotRepository {
	return &metricSnapshotRepository{conn: conn, now: time.Now}
}

// SaveOrUpdate grava os pontos diários numa única transação; o par
// (dono, plataforma, data) é único e a linha existente é sobrescrita.
func (r *metricSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshots []*domain.MetricSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	now := r.now().UTC()

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, s := range snapshots {
			if s.ID == "" {
				id, err := utils.GenerateID()
				if err != nil {
					return errors.Wrap(err, "repository: failed to generate snapshot id")
				}
				s.ID = id
			}

			query, args, err := r.conn.StatementBuilder().
				Insert(metricSnapshotsTable).
				Columns(snapshotColumns...).
				Values(
					s.ID, s.OwnerID, s.Platform.String(), s.Date,
					s.Impressions, s.Reach, s.Engagement, s.Clicks, s.Conversions, s.Followers,
					now.Unix(), now.Unix(),
				).
				Suffix(`ON CONFLICT (owner_id, platform, date) DO UPDATE SET
					impressions = excluded.impressions,
					reach = excluded.reach,
					engagement = excluded.engagement,
					clicks = excluded.clicks,
					conversions = excluded.conversions,
					followers = excluded.followers,
					updated_at = excluded.updated_at`).
				ToSql()
			if err != nil {
				return errors.Wrap(err, "repository: failed to build snapshot upsert")
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return errors.Wrapf(err, "repository: failed to save snapshot %s/%s", s.Platform, s.Date)
			}

			s.UpdatedAt = now
			if s.CreatedAt.IsZero() {
				s.CreatedAt = now
			}
		}
		return nil
	})
}

// ListByOwner lê os snapshots no intervalo fechado de datas YYYY-MM-DD
func (r *metricSnapshotRepository) ListByOwner(ctx context.Context, ownerID, startDate, endDate string) ([]*domain.MetricSnapshot, error) {
	builder := r.conn.StatementBuilder().
		Select(snapshotColumns...).
		From(metricSnapshotsTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("date ASC", "platform ASC")

	if startDate != "" {
		builder = builder.Where(squirrel.GtOrEq{"date": startDate})
	}
	if endDate != "" {
		builder = builder.Where(squirrel.LtOrEq{"date": endDate})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "repository: failed to list snapshots")
	}
	defer rows.Close()

	snapshots := make([]*domain.MetricSnapshot, 0)
	for rows.Next() {
		var s domain.MetricSnapshot
		var platform string
		var createdAt, updatedAt int64

		if err := rows.Scan(
			&s.ID, &s.OwnerID, &platform, &s.Date,
			&s.Impressions, &s.Reach, &s.Engagement, &s.Clicks, &s.Conversions, &s.Followers,
			&createdAt, &updatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "repository: failed to scan snapshot")
		}

		s.Platform = domain.PlatformKey(platform)
		s.CreatedAt = time.Unix(createdAt, 0).UTC()
		s.UpdatedAt = time.Unix(updatedAt, 0).UTC()
		snapshots = append(snapshots, &s)
	}

	return snapshots, rows.Err()
}

func (r *metricSnapshotRepository) DeleteByOwnerAndPlatform(ctx context.Context, ownerID string, platform domain.PlatformKey) error {
	query, args, err := r.conn.StatementBuilder().
		Delete(metricSnapshotsTable).
		Where(squirrel.Eq{"owner_id": ownerID, "platform": platform.String()}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "repository: failed to delete snapshots")
	}
	return nil
}
