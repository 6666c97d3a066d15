// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

// RedisConfig 对应 redis
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// KafkaConfig 对应 kafka，topics 会在启动的时候创建
type KafkaConfig struct {
	Network   string   `yaml:"network"`
	Addresses []string `yaml:"addresses"`
	Topics    []Topic  `yaml:"topics"`
}

type Topic struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

// WebConfig 对应 web 下面 ego 不认识的部分
type WebConfig struct {
	// 允许跨域访问的域名，localhost 总是允许
	AllowOrigins []string `yaml:"allowOrigins"`
	// 计算访客指纹用的盐
	VisitorSalt string `yaml:"visitorSalt"`
}

// ZipkinConfig 对应 trace.zipkin
type ZipkinConfig struct {
	ServiceName string `yaml:"serviceName"`
	Endpoint    string `yaml:"endpoint"`
}
