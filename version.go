package passageflex

// Version is the SDK release version, sent to the identity service in
// the Passage-Version header of every request.
const Version = "0.1.0"
