/*
Package log provides global output control across the whole of dnsrecon. Output comes in
four levels: Silent, Major, Minor and Debug with each level more detailed than the
previous. Levels are inclusive, so setting MinorLevel implies MajorLevel output.

Everything dnsrecon prints once the command line has been parsed goes via this package,
including the reconnaissance results themselves which are Major output. That keeps tests
simple as they only have to replace the io.Writer with SetOut to capture everything.

Print-like functions differ from their fmt counterparts in two ways. Each line of a
multi-line string is prefixed with the level prefix and trailing newlines are trimmed
and replaced with exactly one.

Formatters which are not controlled by levels, such as the report package, should write
to Out() so their output is captured along with everything else.
*/
package log
