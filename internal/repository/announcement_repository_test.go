package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"shul/internal/model"
)

func TestAnnouncementRepository_CreateThenListActive(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewAnnouncementRepository(gormDB)

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	announcement := &model.Announcement{
		Title:     "זמני תפילות לימים הנוראים",
		Content:   "לוח הזמנים המלא מפורסם בלוח המודעות",
		StartDate: now.AddDate(0, 0, -1),
		EndDate:   now.AddDate(0, 1, 0),
		IsActive:  true,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO `announcements` (`title`,`content`,`start_date`,`end_date`,`is_active`,`created_at`,`updated_at`) VALUES (?,?,?,?,?,?,?)",
	)).WithArgs(
		announcement.Title,
		announcement.Content,
		announcement.StartDate,
		announcement.EndDate,
		true,
		sqlmock.AnyArg(),
		sqlmock.AnyArg(),
	).WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), announcement)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), announcement.ID)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `announcements` WHERE is_active = ? AND start_date <= ? AND end_date >= ? ORDER BY start_date DESC",
	)).WithArgs(true, now, now).WillReturnRows(
		sqlmock.NewRows([]string{"id", "title", "content", "start_date", "end_date", "is_active"}).
			AddRow(announcement.ID, announcement.Title, announcement.Content,
				announcement.StartDate, announcement.EndDate, announcement.IsActive),
	)

	listed, err := repo.ListActive(context.Background(), now)
	assert.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Equal(t, uint(7), listed[0].ID)
	assert.Equal(t, announcement.Title, listed[0].Title)
	assert.Equal(t, announcement.Content, listed[0].Content)
	assert.True(t, announcement.StartDate.Equal(listed[0].StartDate))
	assert.True(t, announcement.EndDate.Equal(listed[0].EndDate))
	assert.True(t, listed[0].IsActive)

	assert.NoError(t, mock.ExpectationsWereMet())
}
