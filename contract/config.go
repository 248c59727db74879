package contract

// -----------------------------------------------------------------------------
// Contract Configuration State
// -----------------------------------------------------------------------------

// isContractInitialized returns true once contract_init has run.
func isContractInitialized() bool {
	return loadConfig() != nil
}

// requireAdmin aborts unless the sender is the stored admin.
func requireAdmin() {
	cfg := loadConfig()
	if cfg == nil {
		abortWith(errNotInitialized)
	}
	if cfg.Admin != getSenderAddress() {
		abortWith(errAdminOnly)
	}
}

// ContractInit stores the caller as admin. One shot; the admin's only power
// is advancing the round counter between funding epochs.
//
// Example payload: ContractInit(nil)
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		abortWith(errAlreadyInitialized)
	}
	cfg := ContractConfig{Admin: getSenderAddress()}
	saveConfig(&cfg)
	emitInitEvent(cfg.Admin.String())
	return strptr("initialized")
}
