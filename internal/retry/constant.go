package retry

const logPrefixInvoke = "internal.retry.Invoke"
