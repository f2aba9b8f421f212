package config

var _ Loader = (*envLoader)(nil)
var _ Loader = (*yamlLoader)(nil)
var _ Loader = (*jsonLoader)(nil)
var _ Loader = (*chainLoader)(nil)

func NewEnvLoader(prefix string, envFiles ...string) Loader {
	return &envLoader{prefix: prefix, envFiles: envFiles}
}

func NewYamlLoader(paths ...string) Loader {
	return &yamlLoader{paths: paths}
}

func NewJSONLoader(paths ...string) Loader {
	return &jsonLoader{paths: paths}
}

func NewChainLoader(loaders ...Loader) Loader {
	return &chainLoader{loaders: loaders}
}
