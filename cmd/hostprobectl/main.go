package main

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/hostprobe/hostprobe/pkg/hostprobectl/cmdparser"
)

func setupLogging() {
	log.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
		// log with funcname, file fileds. eg: func=DiscoverHBAs file="fibrechannel.go:112"
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			s := strings.Split(f.Function, ".")
			funcname := s[len(s)-1]
			filename := path.Base(f.File)
			return funcname, fmt.Sprintf("%s:%d", filename, f.Line)
		},
	})
	log.SetReportCaller(true)
}

func main() {
	setupLogging()

	err := cmdparser.Hostprobectl.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
