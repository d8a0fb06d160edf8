/*
Package status reports per-file outcomes for wordsub batch runs.

	            +-------------+
	            |  Reporter   |
	            | (Outcomes)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|  Console  |           |  Logs   |
	|  (pterm)  |           |(zerolog)|
	+-----------+           +---------+

🎯 Purpose:
- Collects the outcome of every processed file (rewritten/unchanged/failed)
- Mirrors each outcome to the console and the structured log
- Prints the aligned end-of-run summary table
- Provides the atomic in-place file write used by `batch -w`

🔄 Flow:
1. The batch command processes a file
2. The outcome is recorded via Reporter.Report (safe from any goroutine)
3. Reporter.Summary prints the per-file table and totals
4. A non-zero exit is chosen when Reporter.Failed reports true

🤝 Interfaces:
- Reporter: outcome collection and display
- FormatFileReport / FormatFileLine: message formatting
- WriteFileAtomic: temp-file-and-rename replacement of an input file

📝 Design Philosophy:
Console output is for the person running the batch; zerolog output is for
anyone debugging it. Both are produced from the same FileReport so they can
never disagree.
*/
package status
