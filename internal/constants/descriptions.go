package constants

const (
	CsvsplitShortDescription = "Split a CSV file into equal parts, keeping the header in each"
	CsvsplitLongDescription  = `
Csvsplit: one csv in, N csvs out.

Csvsplit divides the data rows of a CSV file into a fixed number of contiguous,
near-equal parts and writes each part to its own file with the original header.
The last part absorbs any remainder. Use it to prepare a large dataset for
parallel downstream processing.

Common commands:

  # Split ratings.csv into 4 parts (ratings_part1.csv ... ratings_part4.csv)
  csvsplit split --input ratings.csv --parts 4

  # Show the partition boundaries without writing any files
  csvsplit plan --input ratings.csv --parts 8

  # Get help for a command
  csvsplit help split
`
)
