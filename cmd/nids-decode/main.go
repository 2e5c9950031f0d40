package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	flags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/retoomey/RAPIO-sub003/datatype"
	"github.com/retoomey/RAPIO-sub003/nids"
)

var cli struct {
	Args struct {
		Filename string `positional-arg-name:"filename" optional:"yes"`
	} `positional-args:"yes"`
	LogLevel  string `short:"l" long:"log-level" description:"logging level" choice:"error" choice:"info" choice:"debug" choice:"trace" default:"info"`
	DumpGates bool   `long:"dump-gates" description:"also prints every radial's gate values after the summary"`
	Directory string `short:"d" long:"directory" description:"decode every *.nids file in this directory instead of a single file"`
}

func main() {
	if _, err := flags.Parse(&cli); err != nil {
		os.Exit(1)
	}

	levels := map[string]logrus.Level{
		"error": logrus.ErrorLevel,
		"info":  logrus.InfoLevel,
		"debug": logrus.DebugLevel,
		"trace": logrus.TraceLevel,
	}
	logrus.SetLevel(levels[cli.LogLevel])

	if cli.Directory != "" {
		batch(cli.Directory)
		return
	}
	if cli.Args.Filename == "" {
		fmt.Println("usage: nids-decode <filename> | -d <directory>")
		os.Exit(1)
	}
	single(cli.Args.Filename)
}

func single(path string) {
	logrus.Info(color.CyanString("decoding "), path)

	f, err := os.Open(path)
	if err != nil {
		logrus.Fatal(err)
	}
	defer f.Close()

	rs, err := nids.Decode(f)
	if err != nil {
		logrus.Fatal(err)
	}

	fmt.Printf("Type:       %s\n", rs.TypeName)
	fmt.Printf("Time:       %s\n", rs.DataTime.String())
	fmt.Printf("Location:   %.4f,%.4f  %.3fkm\n", rs.Location.LatDegs, rs.Location.LonDegs, rs.Location.HeightKMs)
	fmt.Printf("Elevation:  %.2f deg\n", rs.ElevationDegs)
	fmt.Printf("VCP:        %d\n", rs.VCP)
	fmt.Printf("Radials:    %d\n", rs.NumRadials())
	fmt.Printf("Gates:      %d\n", rs.NumGates())
	fmt.Printf("First gate: %.1f m\n", rs.DistToFirstGateM)

	if !cli.DumpGates {
		return
	}
	primaryNode, _ := rs.GetNode(datatype.PrimaryName)
	primary := primaryNode.Array()
	azimuthNode, _ := rs.GetNode("Azimuth")
	azimuth := azimuthNode.Array()
	numGates := rs.NumGates()
	for r := 0; r < rs.NumRadials(); r++ {
		fmt.Printf("radial %3d az=%6.2f: ", r, azimuth.GetF64(r))
		for g := 0; g < numGates; g++ {
			fmt.Printf("%6.1f ", primary.GetF64(r*numGates+g))
		}
		fmt.Println()
	}
}

// batch decodes every *.nids file under dir, printing a one-line
// summary per file and a progress bar across the set -- the same
// shape as the donor's directory-mode animate().
func batch(dir string) {
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		logrus.Fatal(err)
	}

	var targets []string
	for _, fi := range files {
		if strings.HasSuffix(fi.Name(), ".nids") {
			targets = append(targets, fi.Name())
		}
	}

	bar := pb.StartNew(len(targets))
	for _, name := range targets {
		full := filepath.Join(dir, name)
		f, err := os.Open(full)
		if err != nil {
			logrus.WithError(err).Warn(name)
			bar.Increment()
			continue
		}
		rs, err := nids.Decode(f)
		f.Close()
		if err != nil {
			logrus.WithError(err).Warn(name)
			bar.Increment()
			continue
		}
		fmt.Printf("%s: %s %.2fdeg %dx%d\n", name, rs.TypeName, rs.ElevationDegs, rs.NumRadials(), rs.NumGates())
		bar.Increment()
	}
	bar.Finish()
}
