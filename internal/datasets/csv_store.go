package datasets

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"vivid-analytics/internal/models"
	"vivid-analytics/internal/shared/filestorages"
	"vivid-analytics/internal/shared/loggers"
)

// Users CSV columns. first_visit_date may be empty on any row.
const (
	colUserID           = "user_id"
	colRegion           = "region"
	colRegistrationDate = "registration_date"
	colFirstVisitDate   = "first_visit_date"
)

// Orders CSV columns.
const (
	colOrderID   = "order_id"
	colOrderDate = "order_date"
	colAmount    = "amount"
	colStatus    = "status"
)

//go:generate mockgen -source=csv_store.go -destination=./mocks/dataset_store_mock.go -package=mocks
type DatasetStore interface {
	// Load reads and validates both record sets. The returned Dataset is
	// immutable by convention: no caller mutates it after load.
	Load(ctx context.Context) (*Dataset, error)
}

type csvDatasetStore struct {
	fileStorage filestorages.FileStorage
	usersKey    string
	ordersKey   string
}

func NewCSVDatasetStore(fileStorage filestorages.FileStorage, usersKey, ordersKey string) DatasetStore {
	return &csvDatasetStore{fileStorage: fileStorage, usersKey: usersKey, ordersKey: ordersKey}
}

func (s *csvDatasetStore) Load(ctx context.Context) (*Dataset, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started loading datasets: users=%s orders=%s", s.usersKey, s.ordersKey)

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	metricDatasetRecordsLoaded.WithLabelValues("users").Set(float64(len(users)))
	metricDatasetRecordsLoaded.WithLabelValues("orders").Set(float64(len(orders)))

	logger.Info().
		Int("users", len(users)).
		Int("orders", len(orders)).
		Msg("datasets loaded")

	return &Dataset{Users: users, Orders: orders}, nil
}

func (s *csvDatasetStore) loadUsers(ctx context.Context) ([]*models.User, error) {
	rows, header, err := s.readCSV(ctx, s.usersKey)
	if err != nil {
		return nil, err
	}

	cols, err := requireColumns(s.usersKey, header, colUserID, colRegion, colRegistrationDate)
	if err != nil {
		return nil, err
	}
	// Optional column: present in generated datasets, absent in minimal ones.
	firstVisitIdx, hasFirstVisit := header[colFirstVisitDate]

	users := make([]*models.User, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for i, row := range rows {
		line := i + 2 // 1-based, after the header row

		userID := strings.TrimSpace(row[cols[colUserID]])
		if userID == "" {
			return nil, errInvalidRecord(s.usersKey, line, fmt.Errorf("empty %s", colUserID))
		}
		if seen[userID] {
			return nil, errDuplicateIdentifier(s.usersKey, userID)
		}
		seen[userID] = true

		registrationDate, err := models.ParseDate(strings.TrimSpace(row[cols[colRegistrationDate]]))
		if err != nil {
			return nil, errInvalidRecord(s.usersKey, line, err)
		}

		user := &models.User{
			UserID:           userID,
			Region:           strings.TrimSpace(row[cols[colRegion]]),
			RegistrationDate: registrationDate,
		}

		if hasFirstVisit {
			if raw := strings.TrimSpace(row[firstVisitIdx]); raw != "" {
				firstVisit, err := models.ParseDate(raw)
				if err != nil {
					return nil, errInvalidRecord(s.usersKey, line, err)
				}
				user.FirstVisitDate = &firstVisit
			}
		}

		users = append(users, user)
	}

	return users, nil
}

func (s *csvDatasetStore) loadOrders(ctx context.Context) ([]*models.Order, error) {
	rows, header, err := s.readCSV(ctx, s.ordersKey)
	if err != nil {
		return nil, err
	}

	cols, err := requireColumns(s.ordersKey, header, colOrderID, colUserID, colOrderDate, colAmount, colStatus)
	if err != nil {
		return nil, err
	}

	orders := make([]*models.Order, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for i, row := range rows {
		line := i + 2

		orderID := strings.TrimSpace(row[cols[colOrderID]])
		if orderID == "" {
			return nil, errInvalidRecord(s.ordersKey, line, fmt.Errorf("empty %s", colOrderID))
		}
		if seen[orderID] {
			return nil, errDuplicateIdentifier(s.ordersKey, orderID)
		}
		seen[orderID] = true

		orderDate, err := models.ParseDate(strings.TrimSpace(row[cols[colOrderDate]]))
		if err != nil {
			return nil, errInvalidRecord(s.ordersKey, line, err)
		}

		amount, err := strconv.ParseFloat(strings.TrimSpace(row[cols[colAmount]]), 64)
		if err != nil {
			return nil, errInvalidRecord(s.ordersKey, line, fmt.Errorf("invalid %s: %w", colAmount, err))
		}
		if amount < 0 {
			return nil, errInvalidRecord(s.ordersKey, line, fmt.Errorf("negative %s: %v", colAmount, amount))
		}

		orders = append(orders, &models.Order{
			OrderID:   orderID,
			UserID:    strings.TrimSpace(row[cols[colUserID]]),
			OrderDate: orderDate,
			Amount:    amount,
			Status:    strings.ToLower(strings.TrimSpace(row[cols[colStatus]])),
		})
	}

	return orders, nil
}

// readCSV returns the data rows and a column-name → index header map.
func (s *csvDatasetStore) readCSV(ctx context.Context, key string) ([][]string, map[string]int, error) {
	rc, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		return nil, nil, errInternalStorageFailed(fmt.Errorf("get %s: %w", key, err))
	}
	defer rc.Close()

	reader := csv.NewReader(rc)
	reader.TrimLeadingSpace = true

	headerRow, err := reader.Read()
	if err == io.EOF {
		return nil, nil, errInvalidRecord(key, 1, fmt.Errorf("empty file"))
	}
	if err != nil {
		return nil, nil, errInvalidRecord(key, 1, err)
	}

	header := make(map[string]int, len(headerRow))
	for idx, name := range headerRow {
		header[strings.ToLower(strings.TrimSpace(name))] = idx
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errInvalidRecord(key, 0, err)
	}

	return rows, header, nil
}

func requireColumns(file string, header map[string]int, columns ...string) (map[string]int, error) {
	cols := make(map[string]int, len(columns))
	for _, column := range columns {
		idx, ok := header[column]
		if !ok {
			return nil, errMissingColumn(file, column)
		}
		cols[column] = idx
	}
	return cols, nil
}
