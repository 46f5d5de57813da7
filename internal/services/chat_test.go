package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/tanvirhasan/jogajog/internal/models"
	"github.com/tanvirhasan/jogajog/internal/services"
)

func TestChatService_SendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockMessageWriter(ctrl)
	mockReader := services.NewMockMessageReader(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewChatService(mockWriter, mockReader, mockKafka)

	tests := []struct {
		name        string
		userID      int64
		displayName string
		content     string
		savedUserID int64
		savedName   string
		savedBody   string
		writerErr   error
		wantID      int64
		wantErr     error
	}{
		{
			name:        "anonymous sender with name",
			userID:      0,
			displayName: "Bob",
			content:     "hi",
			savedUserID: 0,
			savedName:   "Bob",
			savedBody:   "hi",
			wantID:      1,
		},
		{
			name:        "blank name falls back to Guest",
			userID:      0,
			displayName: "   ",
			content:     "hello",
			savedUserID: 0,
			savedName:   "Guest",
			savedBody:   "hello",
			wantID:      2,
		},
		{
			name:        "authenticated sender",
			userID:      7,
			displayName: "alice",
			content:     "  trimmed  ",
			savedUserID: 7,
			savedName:   "alice",
			savedBody:   "trimmed",
			wantID:      3,
		},
		{
			name:        "negative user id treated as anonymous",
			userID:      -4,
			displayName: "x",
			content:     "hi",
			savedUserID: 0,
			savedName:   "x",
			savedBody:   "hi",
			wantID:      4,
		},
		{
			name:        "empty content",
			userID:      0,
			displayName: "Bob",
			content:     "   ",
			wantErr:     services.ErrEmptyContent,
		},
		{
			name:        "writer error",
			userID:      0,
			displayName: "Bob",
			content:     "hi",
			savedUserID: 0,
			savedName:   "Bob",
			savedBody:   "hi",
			writerErr:   errors.New("db error"),
			wantErr:     errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.savedBody != "" {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.savedUserID, tt.savedName, tt.savedBody).
					Return(tt.wantID, tt.writerErr)
			}
			if tt.wantErr == nil {
				mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			id, err := svc.SendMessage(context.Background(), tt.userID, tt.displayName, tt.content)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Zero(t, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestChatService_SendMessage_TruncatesDisplayName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockMessageWriter(ctrl)
	mockReader := services.NewMockMessageReader(ctrl)

	svc := services.NewChatService(mockWriter, mockReader, nil)

	long := strings.Repeat("n", 95)
	mockWriter.EXPECT().
		Save(gomock.Any(), int64(0), strings.Repeat("n", 80), "hi").
		Return(int64(1), nil)

	_, err := svc.SendMessage(context.Background(), 0, long, "hi")
	assert.NoError(t, err)
}

func TestChatService_ListRecent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockMessageWriter(ctrl)
	mockReader := services.NewMockMessageReader(ctrl)

	svc := services.NewChatService(mockWriter, mockReader, nil)

	t.Run("maps rows oldest first with rendered timestamps", func(t *testing.T) {
		first := time.Date(2025, time.March, 5, 18, 30, 1, 0, time.UTC)
		second := time.Date(2025, time.March, 5, 18, 30, 9, 0, time.UTC)

		mockReader.EXPECT().
			ListRecent(gomock.Any(), 100).
			Return([]models.MessageDB{
				{ID: 1, Username: "Bob", Content: "hi", CreatedAt: first},
				{ID: 2, Username: "Guest", Content: "hello", CreatedAt: second},
			}, nil)

		views, err := svc.ListRecent(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []models.MessageView{
			{ID: 1, Username: "Bob", Content: "hi", Created: "18:30:01"},
			{ID: 2, Username: "Guest", Content: "hello", Created: "18:30:09"},
		}, views)
	})

	t.Run("empty chat is an empty slice, not nil", func(t *testing.T) {
		mockReader.EXPECT().ListRecent(gomock.Any(), 100).Return(nil, nil)

		views, err := svc.ListRecent(context.Background())
		assert.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().ListRecent(gomock.Any(), 100).Return(nil, errors.New("db error"))

		views, err := svc.ListRecent(context.Background())
		assert.EqualError(t, err, "db error")
		assert.Nil(t, views)
	})
}
