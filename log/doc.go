/*
Package log is the global output control for the whole module. There are four levels:
Silent, Major, Minor and Debug, with each level including all of the levels before
it. The library proper only ever writes Debug output (per-exchange traces); Major and
Minor exist for front ends such as cmd/publicip which want their progress output
routed through the same switch.

The Print/Printf style functions mirror the fmt equivalents except that a trailing
newline is implied and multi-line output has every line prefixed with the prefix of
its level. Callers constructing expensive log arguments should guard with the
matching If* function first.
*/
package log
