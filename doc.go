/*
Package dbgprint prints diagnostic values over a serial byte sink for
TinyGo firmware.

Two call families are provided. The Print family (PrintHex8, PrintDec16,
PrintF and friends) is always compiled in and is meant for output that must
appear in production builds. The Debug family mirrors it but only does
anything when the program is built with the debug tag:

	tinygo build -tags debug -target arduino ./firmware

Without the tag every Debug function has an empty body and Enabled is false,
so call sites are inlined away and leave nothing in the binary. Guard
argument computations that have side effects with `if dbgprint.Enabled {...}`,
otherwise they can't be removed.

String literals are passed as Flash values. Declare them as typed constants
so they stay in the read-only data section:

	const bootMsg dbgprint.Flash = "boot ok, free ram: "

	dbgprint.DebugF(bootMsg)
	dbgprint.DebugFreeRAM()

On ARM and RISC-V boards that section is flash. On AVR TinyGo copies it
into RAM at reset, so there literals are not kept out of RAM.

Output goes to machine.Serial under TinyGo and to standard error elsewhere.
SetSink replaces it, for instance with a UARTSink wrapping a drivers.UART.
The sink must be configured (baud rate, pins) before the first print.
No call in this package reports errors.
*/
package dbgprint
