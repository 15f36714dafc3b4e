package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/turbot/go-kit/files"
	"github.com/turbot/pipe-fittings/v2/statushooks"
)

const (
	USERS        = 162541 // number of distinct users, as in the MovieLens 25M dataset
	MOVIES       = 59047  // number of distinct movies
	FIRST_RATING = 789652009
)

const header = "userId,movieId,rating,timestamp\n"

var (
	goodRowFormat   = "%d,%d,%.1f,%d\n"
	raggedRowFormat = "%d,%d,%.1f\n"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Println("Usage: gen <total> <ragged> <dest>")
		os.Exit(1)
	}

	spinner := statushooks.NewStatusSpinnerHook(statushooks.WithMessage("Generating ratings..."))
	spinner.Show()
	dest, err := run(os.Args[1], os.Args[2], os.Args[3], func(i, total int) {
		spinner.SetStatus(fmt.Sprintf("Generating ratings... %d/%d", i, total))
	})
	// hide before exiting, os.Exit does not run deferred calls
	spinner.Hide()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Println("Ratings generation complete:", dest)
}

// run validates the arguments and writes the ratings file, returning its path
func run(totalArg, raggedArg, destArg string, progress func(i, total int)) (string, error) {
	totalRows, err := strconv.Atoi(totalArg)
	if err != nil || totalRows < 0 {
		return "", errors.New("invalid total rows value, must be a non-negative integer")
	}

	raggedRows, err := strconv.Atoi(raggedArg)
	if err != nil || raggedRows < 0 {
		return "", errors.New("invalid ragged rows value, must be a non-negative integer")
	}

	dest, err := files.Tildefy(destArg)
	if err != nil {
		return "", fmt.Errorf("invalid destination file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", fmt.Errorf("error creating destination directory: %w", err)
	}

	file, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("error creating file: %w", err)
	}

	w := bufio.NewWriter(file)
	err = generateRatings(w, totalRows, raggedRows, func(i int) {
		progress(i, totalRows)
	})
	if err == nil {
		err = w.Flush()
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("error writing file: %w", err)
	}
	return dest, nil
}

// generateRatings writes a header and totalRows ratings to w. raggedRows of them,
// spread evenly, are missing the timestamp field.
// Output is deterministic for a given totalRows and raggedRows.
func generateRatings(w io.Writer, totalRows, raggedRows int, progress func(int)) error {
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}

	// Calculate ragged interval
	raggedInterval, nextRaggedRow := 0, 0
	if raggedRows > 0 {
		if raggedRows >= totalRows {
			// Every row will be ragged
			raggedInterval = 1
		} else {
			raggedInterval = totalRows / raggedRows
		}
		nextRaggedRow = raggedInterval
	}

	for i := 1; i <= totalRows; i++ {
		if i%10000 == 0 {
			progress(i)
		}

		userID := (i-1)/20%USERS + 1
		movieID := (i*7919)%MOVIES + 1
		rating := float64(i%10+1) / 2
		timestamp := FIRST_RATING + i*37

		var row string
		if raggedInterval > 0 && i == nextRaggedRow {
			row = fmt.Sprintf(raggedRowFormat, userID, movieID, rating)
			nextRaggedRow += raggedInterval
		} else {
			row = fmt.Sprintf(goodRowFormat, userID, movieID, rating, timestamp)
		}

		if _, err := io.WriteString(w, row); err != nil {
			return err
		}
	}
	return nil
}
