package scenefile

import "time"

const DEFAULT_DIRECTORY = "."
const DEFAULT_DESCRIPTOR = "main"
const DEFAULT_EXTENSION = "ma"
const FIRST_VERSION int = 1
const VERSION_PADDING int = 3
const MAX_VERSION int = int(^uint(0) >> 1)

const SCENEHOST_PORT int = 4010
const SCENEHOST_SERVICE = "_scenehost._tcp"
const SCENEHOST_DOMAIN = "local."
const SCENEHOST_INSTANCE_PREFIX = "scenehost."

var SCENEFILE_VERSION = "v0.1.0+development"

const SCENEHOST_MIN_VERSION = "v0.1.0"
const NODE_CACHE_TTL = 5 * time.Second
