package main

var InterruptContext = interruptContext
