package service

import "time"

const (
	defaultSubmitAttempts       = 4
	defaultSubmitBackoff        = 2 * time.Second
	defaultSubmitMaxBackoff     = 30 * time.Second
	defaultSubmitAttemptTimeout = 30 * time.Second

	defaultRecordAttempts = 5
	defaultRecordBackoff  = time.Second

	defaultConfirmTimeout = 30 * time.Second

	defaultRunTimeout = 5 * time.Minute
	unlockTimeout     = 5 * time.Second

	snapshotStep  = "snapshot"
	recipientStep = "recipients"
	buildStep     = "build"
	signStep      = "sign"
	submitStep    = "submit"
	recordStep    = "record"
	confirmStep   = "confirm"
	publishStep   = "publish"

	triggerStarted = "started"
	triggerDropped = "dropped"
)
