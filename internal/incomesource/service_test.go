package incomesource_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kogulmurugaiah/expensetrack/internal/incomesource"
)

func TestService_Add(t *testing.T) {
	userID := uuid.New()

	type testCase struct {
		name      string
		input     string
		setupMock func(m *incomesource.MockRepository)
		want      string
		wantErr   error
	}

	tests := []testCase{
		{
			name:  "Success",
			input: " Freelance ",
			setupMock: func(m *incomesource.MockRepository) {
				m.EXPECT().
					ListSources(gomock.Any(), userID).
					Return([]*incomesource.Source{{Name: "Salary"}}, nil)
				m.EXPECT().
					CreateSource(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, src *incomesource.Source) error {
						src.ID = uuid.New()
						return nil
					})
			},
			want: "Freelance",
		},
		{
			name:    "EmptyName",
			input:   "",
			wantErr: incomesource.ErrEmptyName,
		},
		{
			name:  "DuplicateCaseInsensitive",
			input: "sAlArY",
			setupMock: func(m *incomesource.MockRepository) {
				m.EXPECT().
					ListSources(gomock.Any(), userID).
					Return([]*incomesource.Source{{Name: "Salary"}}, nil)
			},
			wantErr: incomesource.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := incomesource.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := incomesource.NewService(repo)
			got, err := svc.Add(context.Background(), userID, tt.input)

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}
