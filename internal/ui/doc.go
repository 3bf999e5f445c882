// Package ui provides the terminal presentation layer for the northlight CLI:
// shared lipgloss styles and the interactive public feedback browser.
//
// Everything here is a thin consumer of the SDK's public operations; no
// domain logic lives in this package.
package ui
