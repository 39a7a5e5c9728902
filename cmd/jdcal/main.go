// Command jdcal converts between proleptic calendar dates and Julian day
// numbers from the command line.
package main

func main() {
	Execute()
}
