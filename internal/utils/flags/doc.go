// Package flags holds pflag helpers shared by gitglance commands.
package flags
