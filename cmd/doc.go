// Package cmd implements the gsuite command line interface.
//
// The command tree:
//
//	gsuite authorize              Run the consent flow, cache the token
//	gsuite groups create|get|delete|settings
//	gsuite members add|get|update|remove|list
//	gsuite sheets values          Read a spreadsheet range
//	gsuite version
//
// Authorization parameters come from persistent flags or a YAML config
// file given with --config; flags set explicitly win over file values.
package cmd
