package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markdingo/dnsrecon/log"
	"github.com/markdingo/dnsrecon/mock"
	mockresolver "github.com/markdingo/dnsrecon/mock/resolver"
)

// run executes the command line against the testdata mock resolver and returns
// everything written.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &mock.IOWriter{}
	dr := newDNSRecon(nil, mockresolver.NewResolver("testdata"), out)
	err := dr.execute(context.Background(), args)
	log.SetOut(os.Stdout)
	log.SetLevel(log.MajorLevel)

	return out.String(), err
}

func TestSubdomain(t *testing.T) {
	got, err := run(t, "subdomain", "www.example.com", "-e", "testdata/words.txt")
	if err != nil {
		t.Fatal("Unexpected error", err)
	}
	exp := `Performing subdomain enumeration:
Subdomain: www.example.com | IP: 192.0.2.80 | DNS Record Name: www.example.com. | DNS Record Type: A

Performing forward lookup for the main hostname:
Hostname: www.example.com resolved to IP address: 192.0.2.80
`
	if got != exp {
		t.Errorf("Output mismatch\nGot:\n%s\nExp:\n%s", got, exp)
	}
}

func TestSubdomainMissingWordlist(t *testing.T) {
	got, err := run(t, "subdomain", "www.example.com", "--enumerate", "testdata/nofile.txt")
	if err != nil {
		t.Fatal("Missing wordlist should not be an error", err)
	}
	exp := `Performing subdomain enumeration:
Subdomains file 'testdata/nofile.txt' not found.

Performing forward lookup for the main hostname:
Hostname: www.example.com resolved to IP address: 192.0.2.80
`
	if got != exp {
		t.Errorf("Output mismatch\nGot:\n%s\nExp:\n%s", got, exp)
	}
}

func TestSubdomainNoEnumerate(t *testing.T) {
	got, err := run(t, "subdomain", "mail.example.com")
	if err != nil {
		t.Fatal("Unexpected error", err)
	}
	if got != "Performing forward lookup for the main hostname:\n" {
		t.Errorf("Unresolvable main host should print the section only %q", got)
	}
}

func TestZoneTransfer(t *testing.T) {
	got, err := run(t, "zonetransfer", "example.com", "-z")
	if err != nil {
		t.Fatal("Unexpected error", err)
	}
	exp := "Performing zone transfer:\n" +
		"\n" +
		"Dumping zone file from ns1.example.com. - 192.0.2.53...\n" +
		"Transfer not allowed for ns1.example.com.\n" +
		"\n" +
		"Dumping zone file from ns2.example.com. - 192.0.2.54...\n" +
		"@ - 192.0.2.1\t example.com\n" +
		"www - 192.0.2.80\t www.example.com\n" +
		"\n" +
		"Performing forward lookup for the main hostname:\n" +
		"Hostname: example.com resolved to IP address: 192.0.2.1\n"
	if got != exp {
		t.Errorf("Output mismatch\nGot:\n%s\nExp:\n%s", got, exp)
	}
}

func TestZoneTransferDomainOutcome(t *testing.T) {
	got, err := run(t, "zonetransfer", "nxdomain.example.com", "-z")
	if err != nil {
		t.Fatal("Unexpected error", err)
	}
	if !strings.HasPrefix(got, "Performing zone transfer:\nDomain not found.\n\n") {
		t.Errorf("Expected Domain not found, got\n%s", got)
	}
}

func TestZoneTransferEnumerate(t *testing.T) {
	got, err := run(t, "zonetransfer", "example.com", "-e", "testdata/words.txt")
	if err != nil {
		t.Fatal("Unexpected error", err)
	}
	exp := "Performing subdomain enumeration:\n" +
		"Subdomain: www.example.com | IP: 192.0.2.80 | DNS Record Name: www.example.com. | DNS Record Type: A\n" +
		"\n" +
		"Performing forward lookup for the main hostname:\n" +
		"Hostname: example.com resolved to IP address: 192.0.2.1\n"
	if got != exp {
		t.Errorf("Output mismatch\nGot:\n%s\nExp:\n%s", got, exp)
	}

	// zonetransfer does not strip the first label
	got, _ = run(t, "zonetransfer", "www.example.com", "-e", "testdata/words.txt")
	if strings.Contains(got, "Subdomain:") {
		t.Errorf("Expected no results under www.example.com\n%s", got)
	}
}

func TestMisuseNotes(t *testing.T) {
	testCases := []struct {
		args []string
		exp  string
	}{
		{[]string{"zonetransfer", "www.example.com", "-z"},
			"Note: " + wwwPrefixNote + "\n\n"},
		{[]string{"zonetransfer", ".example.com", "-e", "testdata/words.txt", "-z"},
			"Note: " + plainHostnameNote + "\n\n"},
		{[]string{"subdomain", ".example.com", "-e", "testdata/words.txt"},
			"Note: " + plainHostnameNote + "\n\n"},
	}

	for ix, tc := range testCases {
		got, err := run(t, tc.args...)
		if err != nil {
			t.Error(ix, "Notes should not be errors", err)
		}
		if got != tc.exp {
			t.Errorf("%d Got %q want %q", ix, got, tc.exp)
		}
	}
}

func TestNameserver(t *testing.T) {
	dir := t.TempDir()
	got, err := run(t, "nameserver", "example.com", "-o", dir)
	if err != nil {
		t.Fatal("Unexpected error", err)
	}
	path := filepath.Join(dir, "example.com.txt")
	exp := "Name servers saved successfully in " + path + "\n" +
		"Successful discovery of name servers:\n" +
		"ns1.example.com\nns2.example.com\n"
	if got != exp {
		t.Errorf("Output mismatch\nGot:\n%s\nExp:\n%s", got, exp)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal("Nameserver file not written", err)
	}
	if string(b) != "ns1.example.com\nns2.example.com\n" {
		t.Errorf("File content mismatch %q", string(b))
	}

	got, err = run(t, "nameserver", "nxdomain.example.com", "-o", dir)
	if err != nil {
		t.Fatal("None found should not be an error", err)
	}
	if got != "No name servers found for the domain.\n" {
		t.Errorf("Wrong none found output %q", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "nxdomain.example.com.txt")); err == nil {
		t.Error("No file should be written when none found")
	}

	_, err = run(t, "nameserver", "example.com", "-o", filepath.Join(dir, "nodir"))
	if err == nil {
		t.Error("Expected an error saving to a missing directory")
	}
}

func TestUsageErrors(t *testing.T) {
	testCases := [][]string{
		{"subdomain"},
		{"subdomain", "a.example.com", "b.example.com"},
		{"subdomain", "www.example.com", "-e", "a", "-e", "b"},
		{"nameserver", "example.com", "--server", "192.0.2.1", "--server", "192.0.2.2"},
		{"zonetransfer", "example.com", "--bogus"},
		{"nosuchcommand"},
	}

	for ix, args := range testCases {
		_, err := run(t, args...)
		if err == nil {
			t.Error(ix, "Expected an error from", args)
		}
	}
}

func TestVersion(t *testing.T) {
	got, err := run(t, "--version")
	if err != nil {
		t.Fatal("Unexpected error", err)
	}
	if !strings.HasPrefix(got, "Program:     dnsrecon v") || !strings.Contains(got, "Project:") {
		t.Error("Unexpected version output", got)
	}

	got, err = run(t)
	if err != nil {
		t.Fatal("Unexpected error", err)
	}
	if !strings.Contains(got, "zonetransfer") {
		t.Error("Help should list subcommands", got)
	}
}

func TestLogMinor(t *testing.T) {
	got, err := run(t, "--log-minor", "subdomain", "www.example.com", "-e", "testdata/words.txt")
	if err != nil {
		t.Fatal("Unexpected error", err)
	}
	if !strings.Contains(got, "  dnsrecon queries sent to system resolvers") {
		t.Error("Expected minor trace of resolver setup", got)
	}
	if !strings.Contains(got, "  1 of 2 candidates resolved under example.com") {
		t.Error("Expected minor enumeration summary", got)
	}
}
