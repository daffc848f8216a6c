package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"vivid-analytics/internal/models"
	"vivid-analytics/internal/shared/filestorages"

	"github.com/schollz/progressbar/v3"
)

// Region weights roughly follow the population skew of a RU-market webshop:
// two capitals dominate, the tail collapses into Other.
var regionWeights = []struct {
	region string
	weight float64
}{
	{"Moscow", 0.35},
	{"Saint Petersburg", 0.25},
	{"Novosibirsk", 0.07},
	{"Yekaterinburg", 0.06},
	{"Kazan", 0.05},
	{"Nizhny Novgorod", 0.04},
	{"Chelyabinsk", 0.03},
	{"Samara", 0.03},
	{"Omsk", 0.02},
	{"Rostov-on-Don", 0.02},
	{"Other", 0.08},
}

var orderStatuses = []string{
	models.StatusCompleted,
	"created",
	"paid",
	"delivered",
	"returned",
	models.StatusCancelled,
}

const maxOrdersPerUser = 5

func main() {
	var (
		rows      = flag.Int("rows", 150, "number of users to generate")
		seed      = flag.Int64("seed", 42, "random seed, fixed for reproducible datasets")
		outDir    = flag.String("out", "./data", "output directory")
		usersKey  = flag.String("users", "users.csv", "users file name")
		ordersKey = flag.String("orders", "orders.csv", "orders file name")
		startDate = flag.String("start", "2024-05-15", "first possible registration/order date")
		endDate   = flag.String("end", "2024-07-15", "last possible registration/order date")
	)
	flag.Parse()

	if err := run(*rows, *seed, *outDir, *usersKey, *ordersKey, *startDate, *endDate); err != nil {
		fmt.Fprintf(os.Stderr, "datagen failed: %v\n", err)
		os.Exit(1)
	}
}

func run(rows int, seed int64, outDir, usersKey, ordersKey, startDate, endDate string) error {
	r, err := models.NewDateRange(startDate, endDate)
	if err != nil {
		return err
	}

	fileStorage, err := filestorages.NewFileStorage(outDir)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))

	users, err := generateUsers(rng, rows, r)
	if err != nil {
		return err
	}
	orders, err := generateOrders(rng, rows, r)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := fileStorage.Put(ctx, usersKey, bytes.NewReader(users)); err != nil {
		return fmt.Errorf("write %s: %w", usersKey, err)
	}
	if err := fileStorage.Put(ctx, ordersKey, bytes.NewReader(orders)); err != nil {
		return fmt.Errorf("write %s: %w", ordersKey, err)
	}

	fmt.Printf("wrote %s and %s under %s\n", usersKey, ordersKey, outDir)
	return nil
}

func generateUsers(rng *rand.Rand, rows int, r models.DateRange) ([]byte, error) {
	bar := progressbar.Default(int64(rows), "users")

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	_ = writer.Write([]string{"user_id", "region", "registration_date", "first_visit_date"})

	for uid := 1; uid <= rows; uid++ {
		registration := randomDate(rng, r)

		// Most users visited before registering, some never tracked a visit.
		firstVisit := ""
		if rng.Float64() < 0.8 {
			visit := registration.AddDate(0, 0, -rng.Intn(14))
			if visit.Before(r.Start) {
				visit = r.Start
			}
			firstVisit = visit.Format(models.DateLayout)
		}

		_ = writer.Write([]string{
			strconv.Itoa(uid),
			pickRegion(rng),
			registration.Format(models.DateLayout),
			firstVisit,
		})
		_ = bar.Add(1)
	}

	writer.Flush()
	return buf.Bytes(), writer.Error()
}

func generateOrders(rng *rand.Rand, rows int, r models.DateRange) ([]byte, error) {
	bar := progressbar.Default(int64(rows), "orders")

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	_ = writer.Write([]string{"order_id", "user_id", "order_date", "amount", "status"})

	orderID := 1
	for userID := 1; userID <= rows; userID++ {
		for i, n := 0, rng.Intn(maxOrdersPerUser+1); i < n; i++ {
			amount := 500 + rng.Float64()*4500
			_ = writer.Write([]string{
				strconv.Itoa(orderID),
				strconv.Itoa(userID),
				randomDate(rng, r).Format(models.DateLayout),
				strconv.FormatFloat(float64(int(amount*100))/100, 'f', 2, 64),
				orderStatuses[rng.Intn(len(orderStatuses))],
			})
			orderID++
		}
		_ = bar.Add(1)
	}

	writer.Flush()
	return buf.Bytes(), writer.Error()
}

func pickRegion(rng *rand.Rand) string {
	roll := rng.Float64()
	for _, rw := range regionWeights {
		if roll < rw.weight {
			return rw.region
		}
		roll -= rw.weight
	}
	return regionWeights[len(regionWeights)-1].region
}

func randomDate(rng *rand.Rand, r models.DateRange) time.Time {
	days := int(r.End.Sub(r.Start).Hours()/24) + 1
	return r.Start.AddDate(0, 0, rng.Intn(days))
}
