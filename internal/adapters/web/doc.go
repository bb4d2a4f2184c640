// Package web renders the project board as server-side HTML components.
//
// Every component implements [Component]. ListViews subscribe to the shared
// project store when they are built and rebuild their fragment from scratch on
// each notification, handing the new fragment to any registered render hooks
// (the event stream uses one). FormView validates submissions before anything
// reaches the store. Board assembles the form and the lists into one page.
package web
