package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
)

const program = "go-lcu"

func main() {
	log.SetFlags(0)

	flags := flag.NewFlagSet("build", flag.ContinueOnError)
	flags.SetOutput(log.Writer())

	var tagName string
	flags.StringVar(&tagName, "tag-name", "", "name of the tag to build")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
	}

	if tagName == "" {
		log.Fatal("please provide a tag name")
	}

	if err := os.RemoveAll("./build"); err != nil {
		log.Fatalf("failed to delete build directory: %v", err)
	}
	if err := os.MkdirAll("./build", 0700); err != nil {
		log.Fatalf("failed to create build directory: %v", err)
	}

	builds := []osArch{
		{os: "linux", arch: "amd64"},
		{os: "windows", arch: "amd64"},
		{os: "darwin", arch: "arm64"},
	}

	for _, build := range builds {
		goBuild(build, tagName)

		archive := fmt.Sprintf("%s-%s-%s.tar.gz", program, build.os, build.arch)

		run(build, exec.Command("tar", "cfz", "./build/"+archive, build.executable()))
		createChecksum(build, archive)
	}
}

type osArch struct {
	os   string
	arch string
}

func (v osArch) executable() string {
	if v.os == "windows" {
		return program + ".exe"
	}
	return program
}

func goBuild(build osArch, tagName string) {
	cmd := exec.Command("go", "build", "-ldflags", "-X main.version="+tagName, "-o", "./"+build.executable(), "./cmd/"+program)
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, "CGO_ENABLED=0")
	cmd.Env = append(cmd.Env, "GOOS="+build.os)
	cmd.Env = append(cmd.Env, "GOARCH="+build.arch)

	run(build, cmd)
}

func createChecksum(build osArch, archive string) {
	cmd := exec.Command("sha256sum", archive)
	cmd.Dir = "./build"

	out := run(build, cmd)

	name := fmt.Sprintf("./build/%s-%s-%s.sha256", program, build.os, build.arch)
	if err := os.WriteFile(name, out, 0600); err != nil {
		log.Fatalf("failed to write checksum file: %v", err)
	}
}

func run(build osArch, cmd *exec.Cmd) []byte {
	log.Printf("%s-%s: %s", build.os, build.arch, strings.Join(cmd.Args, " "))

	out, err := cmd.Output()
	if err != nil {
		log.Fatalf("failed to run command: %v", err)
	}
	return out
}
