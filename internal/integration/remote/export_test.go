package remote

// FetchLimited exposes fetch with a caller-chosen body size limit.
var FetchLimited = fetch
