package scaffold

import (
	"fmt"
	"strings"
)

// Scaffold file names, relative to the repository root
const (
	ReadmeFile    = "README.md"
	GitignoreFile = ".gitignore"
	LicenseFile   = "LICENSE"
)

var gitignorePatterns = []string{
	"node_modules/",
	"dist/",
	"build/",
	".vscode/",
	".DS_Store",
	"*.log",
}

const licenseTemplate = `MIT License

Copyright (c) %d %s

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
`

// Readme renders the README for repo. There is no trailing newline.
func Readme(repo string) string {
	return fmt.Sprintf("# %s\n\nCreated by automated setup.", repo)
}

// Gitignore renders the ignore-patterns file. There is no trailing newline.
func Gitignore() string {
	return strings.Join(gitignorePatterns, "\n")
}

// License renders the MIT license for owner and year.
func License(year int, owner string) string {
	return fmt.Sprintf(licenseTemplate, year, owner)
}
