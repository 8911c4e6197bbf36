package cmd

import (
	"fmt"
	"strings"
)

const exampleFile = `# This is an example file for 'deborg'
# deborg was written to parse orgmode list items of the general format:
+ package-name {distro:release:tag1,tag2,tag3}

# where each item can specify alternative packages separated by comma for the
# same requirement
+ package, package1 {distro1}, package2b {distro2:release_b}

# for lines with several comma-separated packages deborg will at most return one
# package, as they are seen as alternatives; if more than one package matches the
# specifications an error will be reported.

# As can be seen from the comment lines it is no problem to write more information into
# the file, as long as the package lines (list items with either '-' or '+')
# have the correct format. This additional information does not have to be in
# comment format as we see below:

* System relevant packages
  The following packages I always want installed as they provide foo for baz...
  + foo
  + foo-two
  # we can comment on the packages using description list items like that:
  + baz, baz-alternative {distro1} :: for distro1 baz is missing in the repos
                                      but baz-alternative provides the same
                                      functionality.
  # and we can use tags like here
  + apache {::server} :: this should be installed for any distro, but only on a
                         server
  + office-app-x {::desktop,laptop} :: this will be installed when 'desktop' or
                                       'laptop' is passed as tag, hence not on a
                                       server.

* Email
** general
   # we can also use '-' as list bullet
   - thunderbird

** language support
   - thunderbird-locale-xx {Ubuntu}, thunderbird-l10n-xx {Debian} :: language xx
   - thunderbird-locale-zz {Ubuntu}, thunderbird-l10n-zz {Debian} :: language zz
`

// example is an invocation against exampleFile and the output it prints.
type example struct {
	args   []string
	output string
}

var examples = []example{
	{[]string{"", ""}, "package foo foo-two baz thunderbird"},
	{[]string{"distro1", ""}, "package1 foo foo-two baz-alternative thunderbird"},
	{[]string{"distro2", "release_b"}, "package2b foo foo-two baz thunderbird"},
	{[]string{"", "", "--tags=server"}, "package foo foo-two baz apache thunderbird"},
	{[]string{"distro1", "", "--tags=desktop"}, "package1 foo foo-two baz-alternative office-app-x thunderbird"},
	{[]string{"distro1", "", "--tags=desktop,server"}, "package1 foo foo-two baz-alternative apache office-app-x thunderbird"},
	{[]string{"Debian", ""}, "package foo foo-two baz thunderbird thunderbird-l10n-xx thunderbird-l10n-zz"},
	{[]string{"Ubuntu", ""}, "package foo foo-two baz thunderbird thunderbird-locale-xx thunderbird-locale-zz"},
	{[]string{"distro", "any", "--sep=::"}, "package::foo::foo-two::baz::thunderbird"},
}

func (e example) String() string {
	quoted := make([]string, len(e.args))
	for i, a := range e.args {
		if strings.HasPrefix(a, "-") {
			quoted[i] = a
		} else {
			quoted[i] = "'" + a + "'"
		}
	}
	return strings.Join(quoted, " ")
}

func longHelp() string {
	const indent = "  "
	var b strings.Builder
	b.WriteString("Extract Debian package information from an emacs .org file.\n\n")
	b.WriteString("description:\n\n")
	b.WriteString(indent + "This program parses an orgfile with list entries (+ <item> or - <item>)\n")
	b.WriteString(indent + "where each list item specifies one package or alternatives for the same package:\n")
	b.WriteString(indent + " + package1, package1a {Ubuntu:18.04}, package1b {Debian:9}\n")
	b.WriteString(indent + " + package2, package2a {Ubuntu}\n")
	b.WriteString(indent + " + package3 {::desktop,laptop}\n")
	b.WriteString(indent + "...\n")
	b.WriteString(indent + "where {<distro>:<release>:<tags>} determine which package should be returned by deborg.\n")
	b.WriteString(indent + "Also see 'deborg --example-file'.\n\n")
	b.WriteString("examples:\n\n")
	b.WriteString(indent + "For easier integration into scripts, it is advisable to use the exact strings returned\n")
	b.WriteString(indent + "by a tool like 'lsb_release' for 'distro' and 'release'.\n")
	b.WriteString(indent + "distro: lsb_release --short --id\n")
	b.WriteString(indent + "release: lsb_release --short --release\n\n")
	b.WriteString(indent + "$ deborg packages.org $(lsb_release --short --id) $(lsb_release --short --release)\n")
	b.WriteString(indent + "$ package1 package2 package3\n\n")
	b.WriteString(indent + "Using the example file 'deborg --example-file > examples.org' :\n\n")
	for _, ex := range examples {
		fmt.Fprintf(&b, "%s$ deborg examples.org %s\n%s$ %s\n\n", indent, ex, indent, ex.output)
	}
	b.WriteString(indent + "Saved targets in deborg.toml:\n\n")
	b.WriteString(indent + "$ deborg targets add workstation Debian 12 --tags=desktop\n")
	b.WriteString(indent + "$ deborg --target workstation examples.org\n")
	return b.String()
}
