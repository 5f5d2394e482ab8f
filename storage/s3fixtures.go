package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jday1/euros/logging"
)

type FixtureSource interface {
	Load(ctx context.Context) ([]*Fixture, error)
}

// S3FixtureSource reads the tournament fixture list from a fixtures.csv
// object, the format published for the tournament and used for the initial
// load and for bulk result corrections.
type S3FixtureSource struct {
	Client *s3.Client
	Bucket string
	Key    string
}

func (s *S3FixtureSource) Load(ctx context.Context) ([]*Fixture, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.Bucket,
		Key:    &s.Key,
	})
	if err != nil {
		logging.Log.Errorf("IMPORT: failed to get s3://%s/%s: %v", s.Bucket, s.Key, err)
		return nil, err
	}
	defer func() {
		_ = out.Body.Close()
	}()

	fixtures, err := ParseFixturesCSV(out.Body)
	if err != nil {
		logging.Log.Errorf("IMPORT: failed to parse fixtures csv: %v", err)
		return nil, err
	}

	logging.Log.Infof("IMPORT: loaded %d fixtures from s3://%s/%s", len(fixtures), s.Bucket, s.Key)
	return fixtures, nil
}

// fixtureDateLayout is day-first with a 24h kick-off time, e.g.
// "14/06/2024 20:00".
const fixtureDateLayout = "02/01/2006 15:04"

// ParseFixturesCSV reads the published fixture format: a header row of
// Match Number, Round Number, Date, Location, Home Team, Away Team, Group,
// Result. The Result column is empty for unplayed matches.
func ParseFixturesCSV(r io.Reader) ([]*Fixture, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"Match Number", "Round Number", "Date", "Home Team", "Away Team"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("fixtures csv is missing column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var fixtures []*Fixture
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read fixtures row: %w", err)
		}

		matchNumber, err := strconv.Atoi(field(record, "Match Number"))
		if err != nil {
			return nil, fmt.Errorf("invalid match number %q: %w", field(record, "Match Number"), err)
		}

		date, err := time.Parse(fixtureDateLayout, field(record, "Date"))
		if err != nil {
			return nil, fmt.Errorf("invalid date for match %d: %w", matchNumber, err)
		}

		fixtures = append(fixtures, &Fixture{
			MatchNumber: matchNumber,
			Round:       field(record, "Round Number"),
			Group:       field(record, "Group"),
			Date:        date,
			HomeTeam:    field(record, "Home Team"),
			AwayTeam:    field(record, "Away Team"),
			Location:    field(record, "Location"),
			Result:      field(record, "Result"),
		})
	}

	return fixtures, nil
}
